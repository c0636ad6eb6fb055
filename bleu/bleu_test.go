package bleu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize13a(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Il gatto dorme.", []string{"Il", "gatto", "dorme", "."}},
		{"costa 3.50, circa", []string{"costa", "3.50", ",", "circa"}},
		{"a-b 1999-2000", []string{"a-b", "1999", "-", "2000"}},
		{"\"ciao\" (mondo)!", []string{"\"", "ciao", "\"", "(", "mondo", ")", "!"}},
		{"a &amp; b", []string{"a", "&", "b"}},
		{"riga\nspez-\nzata", []string{"riga", "spezzata"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize13a(tt.in), tt.in)
	}
}

func TestCorpusSelf(t *testing.T) {
	ref := "Nel mezzo del cammin di nostra vita mi ritrovai per una selva oscura."
	s, err := Corpus([]string{ref}, []string{ref})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, s.Score, 1e-9)
	assert.Equal(t, 1.0, s.BP)
}

func TestCorpusKnownValue(t *testing.T) {
	// hyp drops one token: p1=6/6 p2=4/5 p3=2/4, no 4-gram survives
	refs := []string{"the cat sat on the mat ."}
	hyps := []string{"the cat sat the mat ."}
	s, err := Corpus(refs, hyps)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, s.Precisions[0], 1e-9)
	assert.InDelta(t, 80.0, s.Precisions[1], 1e-9)
	assert.InDelta(t, 50.0, s.Precisions[2], 1e-9)
	assert.InDelta(t, 100.0/6, s.Precisions[3], 1e-9) // smoothed 1/(2*3)
	assert.Less(t, s.BP, 1.0)
	assert.Greater(t, s.Score, 0.0)
	assert.Less(t, s.Score, 100.0)
}

func TestCorpusEmptyHypothesis(t *testing.T) {
	s, err := Corpus([]string{"una frase di riferimento"}, []string{""})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Score)
}

func TestCorpusTooShortForFourGrams(t *testing.T) {
	s, err := Corpus([]string{"ciao mondo"}, []string{"ciao mondo"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Score)
}

func TestCorpusSmoothing(t *testing.T) {
	// No 4-gram matches: exp smoothing keeps the score above zero.
	s, err := Corpus([]string{"a b c d e"}, []string{"a b c x e"})
	require.NoError(t, err)
	assert.Greater(t, s.Score, 0.0)
}

func TestCorpusLengthMismatch(t *testing.T) {
	_, err := Corpus([]string{"a"}, nil)
	assert.Error(t, err)
}

func TestCorpusPoolsSegments(t *testing.T) {
	refs := []string{"uno due tre quattro cinque", "sei sette otto nove dieci"}
	s, err := Corpus(refs, refs)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, s.Score, 1e-9)
	assert.Equal(t, 10, s.SysLen)
}
