package editdist

// Levenshtein returns the single character insert/delete/substitute edit
// distance between a and b. Characters are unicode code points, so an
// accented letter counts as one character regardless of its UTF-8 width.
func Levenshtein(a, b string) int {
	return Runes([]rune(a), []rune(b))
}

// Runes is Levenshtein over already decoded text. Only two rows of the
// table are kept, so whole documents are fine.
func Runes(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a // Shorter row
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j // First row
	}
	for i := 1; i < len(a)+1; i++ {
		cur[0] = i // First col
		for j := 1; j < len(b)+1; j++ {
			del := cur[j-1] + 1
			ins := prev[j] + 1
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += 1
			}
			cur[j] = min(sub, del, ins)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// CER is the character error rate of a distance against a reference of
// length refLen.
func CER(dist int, refLen int) float64 {
	if dist == 0 {
		return 0.0 // Perfect match
	} else if refLen == 0 {
		return 1.0 // 100% error if should be empty and not
	} else {
		return float64(dist) / float64(refLen)
	}
}
