//go:build tesseract

package main

import (
	_ "github.com/ughe/ocreval/ocr/tesseract"
)
