package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteCSV writes the header and the rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows()); err != nil {
		return err
	}
	return cw.Error()
}

type jsonDocument struct {
	ID           string   `json:"id"`
	CharAccuracy float64  `json:"char_accuracy"`
	WordAccuracy float64  `json:"word_accuracy"`
	Labels       []string `json:"labels,omitempty"`
}

type jsonRow struct {
	Engine       string         `json:"engine"`
	Folder       string         `json:"folder"`
	CharAccuracy float64        `json:"char_accuracy"`
	WordAccuracy float64        `json:"word_accuracy"`
	BLEU         float64        `json:"bleu"`
	Score        float64        `json:"score"`
	Comment      string         `json:"comment"`
	Labels       []string       `json:"labels,omitempty"`
	Skipped      []string       `json:"skipped,omitempty"`
	Documents    []jsonDocument `json:"documents,omitempty"`
	Error        string         `json:"error,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WriteJSON writes the rows as an indented JSON array. Per document scores
// are included when details is set.
func (t *Table) WriteJSON(w io.Writer, details bool) error {
	rows := make([]jsonRow, 0, len(t.rows))
	for _, s := range t.rows {
		r := jsonRow{
			Engine:  s.Engine,
			Folder:  s.Folder,
			Comment: s.Comment(),
			Skipped: s.Skipped,
		}
		if s.Err != nil {
			r.Error = s.Err.Error()
			rows = append(rows, r)
			continue
		}
		r.CharAccuracy = round2(s.CharAccuracy)
		r.WordAccuracy = round2(s.WordAccuracy)
		r.BLEU = round2(s.BLEU)
		r.Score = round2(s.Score)
		for _, l := range s.Labels.Sorted() {
			r.Labels = append(r.Labels, string(l))
		}
		if details {
			for _, d := range s.Documents {
				jd := jsonDocument{ID: d.ID, CharAccuracy: round2(d.CharAccuracy), WordAccuracy: round2(d.WordAccuracy)}
				for _, l := range d.Labels.Sorted() {
					jd.Labels = append(jd.Labels, string(l))
				}
				r.Documents = append(r.Documents, jd)
			}
		}
		rows = append(rows, r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	errorStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

// Render draws the table for a terminal.
func (t *Table) Render() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Header...).
		Rows(t.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(t.rows) && t.rows[row].Err != nil && col == len(Header)-1:
				return errorStyle
			case col >= 1 && col <= 4:
				return numberStyle
			}
			return cellStyle
		})
	return tbl.Render()
}

// Details lists per document scores under each engine.
func (t *Table) Details(w io.Writer) error {
	for _, s := range t.rows {
		if _, err := fmt.Fprintf(w, "%s\n", s.Engine); err != nil {
			return err
		}
		for _, d := range s.Documents {
			labels := ""
			if len(d.Labels) > 0 {
				names := make([]string, 0, len(d.Labels))
				for _, l := range d.Labels.Sorted() {
					names = append(names, l.String())
				}
				labels = "  " + strings.Join(names, ", ")
			}
			if _, err := fmt.Fprintf(w, "  %-30s char %6s  word %6s%s\n", d.ID, fmt2(d.CharAccuracy), fmt2(d.WordAccuracy), labels); err != nil {
				return err
			}
		}
		for _, id := range s.Skipped {
			if _, err := fmt.Fprintf(w, "  %-30s skipped (no hypothesis file)\n", id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the table to fileName; the format follows the extension
// (.json, .pdf, anything else is CSV).
func (t *Table) Save(fileName string) error {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return create(fileName, func(w io.Writer) error { return t.WriteJSON(w, true) })
	case ".pdf":
		return t.SavePDF(fileName)
	default:
		return create(fileName, t.WriteCSV)
	}
}

// SavePDF writes the table as PDF whatever the extension of fileName.
func (t *Table) SavePDF(fileName string) error {
	return create(fileName, func(w io.Writer) error { return t.WritePDF(w, pdfTitle) })
}

const pdfTitle = "OCR comparison"

func create(fileName string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
