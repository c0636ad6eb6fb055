package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ughe/ocreval/compare"
	"github.com/ughe/ocreval/diagnose"
)

func sample() *Table {
	t := New()
	t.Append(&compare.EngineSummary{
		Engine:       "books/txt_tesseract_5_3_0",
		CharAccuracy: 96.875,
		WordAccuracy: 90,
		BLEU:         71.2345,
		Score:        0.4*96.875 + 0.4*90 + 0.2*71.2345,
		Labels:       diagnose.Set{diagnose.DiacriticErrors: {}},
		Documents: []compare.DocumentComparison{
			{ID: "a.txt", CharAccuracy: 100, WordAccuracy: 100, Labels: diagnose.Set{}},
			{ID: "b.txt", CharAccuracy: 93.75, WordAccuracy: 80, Labels: diagnose.Set{diagnose.DiacriticErrors: {}}},
		},
	})
	t.Append(&compare.EngineSummary{
		Engine: "books/txt_easyocr_1_7_2",
		Err:    &compare.EngineError{Engine: "books/txt_easyocr_1_7_2", Err: compare.ErrNoComparableDocuments},
	})
	t.Append(&compare.EngineSummary{
		Engine:       "perfect",
		CharAccuracy: 100, WordAccuracy: 100, BLEU: 100, Score: 100,
		Labels: diagnose.Set{},
	})
	return t
}

func TestRowsKeepAppendOrderAndFormat(t *testing.T) {
	rows := sample().Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"books/txt_tesseract_5_3_0", "96.88", "90.00", "71.23", "89.00", "accent errors"}, rows[0])
	assert.Equal(t, "books/txt_easyocr_1_7_2", rows[1][0])
	assert.Equal(t, "-", rows[1][1])
	assert.Contains(t, rows[1][5], "ERROR:")
	assert.Equal(t, []string{"perfect", "100.00", "100.00", "100.00", "100.00", "good accuracy"}, rows[2])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WriteCSV(&buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, "89.00", records[1][4])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WriteJSON(&buf, true))
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, 96.88, rows[0]["char_accuracy"])
	assert.Len(t, rows[0]["documents"], 2)
	assert.Contains(t, rows[1]["error"], "no comparable documents")
}

func TestRender(t *testing.T) {
	out := sample().Render()
	for _, h := range Header {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "accent errors")
	assert.Contains(t, out, "71.23")
}

func TestDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().Details(&buf))
	assert.Contains(t, buf.String(), "b.txt")
	assert.Contains(t, buf.String(), "93.75")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WritePDF(&buf, "Confronto OCR: città"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestSaveByExtension(t *testing.T) {
	dir := t.TempDir()
	tbl := sample()
	for _, name := range []string{"out.csv", "out.json", "out.pdf"} {
		path := filepath.Join(dir, "results", name)
		require.NoError(t, tbl.Save(path))
		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, st.Size(), int64(0))
	}
}

func TestSavePDFIgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")
	require.NoError(t, sample().SavePDF(path))
	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF-")))
}

func TestEmptyTable(t *testing.T) {
	tbl := New()
	assert.Equal(t, 0, tbl.Len())
	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))
	assert.Equal(t, "OCR Folder,Char Acc %,Word Acc %,BLEU,Score 1-100,Comment\n", buf.String())
}
