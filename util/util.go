package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

func Read(fileName string) ([]byte, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadText reads a UTF-8 text file. Invalid encoding is an error.
func ReadText(fileName string) (string, error) {
	buf, err := Read(fileName)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%s: not valid UTF-8", fileName)
	}
	return string(buf), nil
}

// Write creates fileName (and its directory) holding buf.
func Write(buf []byte, fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	n := 0
	for n < len(buf) {
		m, err := f.Write(buf[n:])
		if err != nil {
			return err
		}
		n += m
	}
	return nil
}

// Exists reports whether fileName is an existing regular file.
func Exists(fileName string) bool {
	st, err := os.Stat(fileName)
	return err == nil && st.Mode().IsRegular()
}
