//go:build cgo

// Package tesseract registers the local Tesseract engine with package ocr.
// It needs cgo and libtesseract; import it for its side effect:
//
//	import _ "github.com/ughe/ocreval/ocr/tesseract"
package tesseract

import (
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/ughe/ocreval/ocr"
)

func init() {
	ocr.Register("tesseract", func(_, locale string) (ocr.Client, error) {
		lang, err := ocr.TesseractLanguage(locale)
		if err != nil {
			return nil, err
		}
		return &Client{Language: lang}, nil
	})
}

// Client runs the Tesseract library in process.
type Client struct {
	Language       string
	TessdataPrefix string
}

// Method required by ocr.Client
func (c *Client) Run(image []byte) (*ocr.Result, error) {
	const service = "Tesseract"

	client := gosseract.NewClient()
	defer client.Close()
	if c.TessdataPrefix != "" {
		client.TessdataPrefix = c.TessdataPrefix
	}
	if c.Language != "" {
		if err := client.SetLanguage(c.Language); err != nil {
			return nil, err
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return nil, err
	}

	start := time.Now()
	fullText, err := client.Text()
	milli := int64(time.Since(start) / time.Millisecond)
	if err != nil {
		return nil, err
	}

	return &ocr.Result{
		Service:  service,
		Version:  gosseract.Version(),
		FullText: fullText,
		Duration: milli,
		Date:     start.UTC().Format("2006-01-02 15:04:05 MST"),
	}, nil
}
