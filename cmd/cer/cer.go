// Command cer prints the character error rate of a transcription against
// its ground truth, and the matching character accuracy.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ughe/ocreval/editdist"
	"github.com/ughe/ocreval/metric"
	"github.com/ughe/ocreval/util"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: cer test.txt truth.txt")
	}
	test, err := util.ReadText(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	truth, err := util.ReadText(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	dist := editdist.Levenshtein(test, truth)
	fmt.Printf("cer %.5f\n", editdist.CER(dist, len([]rune(truth))))
	fmt.Printf("accuracy %.2f\n", metric.CharAccuracy(truth, test))
}
