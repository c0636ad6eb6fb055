package bleu

import (
	"regexp"
	"strings"
)

// mteval-v13a tokenization, the sacrebleu default.
var (
	tok13aPunct    = regexp.MustCompile("([\\{-\\~\\[-\\x60 -\\&\\(-\\+\\:-\\@\\/])")
	tok13aPeriodL  = regexp.MustCompile(`([^0-9])([\.,])`)
	tok13aPeriodR  = regexp.MustCompile(`([\.,])([^0-9])`)
	tok13aDash     = regexp.MustCompile(`([0-9])(-)`)
	tok13aEntities = strings.NewReplacer("&quot;", `"`, "&amp;", "&", "&lt;", "<", "&gt;", ">")
	tok13aJoins    = strings.NewReplacer("<skipped>", "", "-\n", "", "\n", " ")
)

// Tokenize13a splits a segment the way mteval-v13a.pl does.
func Tokenize13a(line string) []string {
	line = tok13aJoins.Replace(line)
	if strings.Contains(line, "&") {
		line = tok13aEntities.Replace(line)
	}
	line = " " + line + " "
	line = tok13aPunct.ReplaceAllString(line, " $1 ")
	line = tok13aPeriodL.ReplaceAllString(line, "$1 $2 ")
	line = tok13aPeriodR.ReplaceAllString(line, " $1 $2")
	line = tok13aDash.ReplaceAllString(line, "$1 $2 ")
	return strings.Fields(line)
}
