// Package report collects one row per OCR engine and writes the table as
// CSV, JSON, a terminal table or a PDF page.
package report

import (
	"strconv"

	"github.com/ughe/ocreval/compare"
)

// Header names the columns of every output format.
var Header = []string{"OCR Folder", "Char Acc %", "Word Acc %", "BLEU", "Score 1-100", "Comment"}

// Table keeps rows in the order they were appended, which is the engine
// configuration order.
type Table struct {
	rows []*compare.EngineSummary
}

var _ compare.Sink = (*Table)(nil)

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Append adds a row.
func (t *Table) Append(s *compare.EngineSummary) {
	t.rows = append(t.rows, s)
}

// Len is the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func fmt2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Row formats one summary; scores have two decimals. A row marked with
// an error has no scores.
func Row(s *compare.EngineSummary) []string {
	if s.Err != nil {
		return []string{s.Engine, "-", "-", "-", "-", s.Comment()}
	}
	return []string{
		s.Engine,
		fmt2(s.CharAccuracy),
		fmt2(s.WordAccuracy),
		fmt2(s.BLEU),
		fmt2(s.Score),
		s.Comment(),
	}
}

// Rows formats every row.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, s := range t.rows {
		rows[i] = Row(s)
	}
	return rows
}
