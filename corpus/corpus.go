// Package corpus pairs ground truth documents with the transcriptions of
// one OCR engine. A document is a text file; its identifier is the file
// name, shared between the reference folder and each engine's folder.
package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/ughe/ocreval/logging"
	"github.com/ughe/ocreval/util"
)

// Engine is one OCR engine's hypothesis folder.
type Engine struct {
	Name   string `toml:"name" json:"name"`
	Folder string `toml:"folder" json:"folder"`
}

// ID names the engine, falling back to its folder.
func (e Engine) ID() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Folder
}

// Pair is one document as seen by the reference and by an engine.
type Pair struct {
	ID     string
	Engine string
	Ref    string
	Hyp    string
}

// Reference is the ground truth folder. Texts are read once and shared
// read only between engines.
type Reference struct {
	dir       string
	ids       []string
	normalize bool
	log       *logging.Logger

	mu    sync.Mutex
	texts map[string]string
}

// Option configures a Reference.
type Option func(*Reference)

// WithLogger sets where missing hypothesis warnings go.
func WithLogger(l *logging.Logger) Option {
	return func(r *Reference) { r.log = l }
}

// WithNormalization NFC-normalises every text after loading, so composed
// and decomposed accents compare equal.
func WithNormalization(on bool) Option {
	return func(r *Reference) { r.normalize = on }
}

// Open lists the reference folder. Directories and dot files are ignored;
// the remaining file names, sorted, are the document identifiers.
func Open(dir string, opts ...Option) (*Reference, error) {
	r := &Reference{
		dir:   dir,
		log:   logging.Discard(),
		texts: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "list", Path: dir, Err: err}
	}
	for _, e := range entries { // ReadDir sorts by file name
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		r.ids = append(r.ids, e.Name())
	}
	if len(r.ids) == 0 {
		return nil, &IOError{Op: "list", Path: dir, Err: ErrEmptyCorpus}
	}
	return r, nil
}

// Dir is the reference folder.
func (r *Reference) Dir() string {
	return r.dir
}

// IDs are the document identifiers in iteration order.
func (r *Reference) IDs() []string {
	return append([]string(nil), r.ids...)
}

func (r *Reference) load(path string) (string, error) {
	text, err := util.ReadText(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	if r.normalize {
		text = norm.NFC.String(text)
	}
	return text, nil
}

// Text returns the reference text of id.
func (r *Reference) Text(id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.texts[id]; ok {
		return t, nil
	}
	t, err := r.load(filepath.Join(r.dir, id))
	if err != nil {
		return "", err
	}
	r.texts[id] = t
	return t, nil
}

// Pairs iterates the documents of one engine.
func (r *Reference) Pairs(e Engine) *Iterator {
	return &Iterator{ref: r, engine: e, pos: -1}
}

// Iterator yields pairs lazily, one file read at a time. Documents without
// a hypothesis file are skipped with one warning each.
type Iterator struct {
	ref     *Reference
	engine  Engine
	pos     int
	cur     Pair
	err     error
	skipped []string
}

// Next advances to the next comparable document. It returns false at the
// end or on an IOError, see Err.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	for it.pos+1 < len(it.ref.ids) {
		it.pos++
		id := it.ref.ids[it.pos]
		hypPath := filepath.Join(it.engine.Folder, id)
		if !util.Exists(hypPath) {
			it.skipped = append(it.skipped, id)
			it.ref.log.Warn(ErrMissingHypothesis.Error()+", skipped",
				"engine", it.engine.ID(), "id", id, "path", hypPath)
			continue
		}
		ref, err := it.ref.Text(id)
		if err != nil {
			it.err = err
			return false
		}
		hyp, err := it.ref.load(hypPath)
		if err != nil {
			it.err = err
			return false
		}
		it.cur = Pair{ID: id, Engine: it.engine.ID(), Ref: ref, Hyp: hyp}
		return true
	}
	return false
}

// Pair is the current document.
func (it *Iterator) Pair() Pair {
	return it.cur
}

// Err is the IOError that stopped iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Skipped lists the identifiers without a hypothesis file seen so far.
func (it *Iterator) Skipped() []string {
	return it.skipped
}
