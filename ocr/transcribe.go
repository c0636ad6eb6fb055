package ocr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ughe/ocreval/logging"
	"github.com/ughe/ocreval/util"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true, ".gif": true, ".bmp": true,
}

// Images lists the image files of dir, sorted by name.
func Images(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// TextName is the transcription file name of an image: page1.tif -> page1.txt.
func TextName(image string) string {
	return strings.TrimSuffix(image, filepath.Ext(image)) + ".txt"
}

// Transcriber writes one text file per image using a single engine.
type Transcriber struct {
	Client Client
	// Force overwrites transcriptions that already exist.
	Force bool
	Log   *logging.Logger
}

// Stats counts what a folder run did.
type Stats struct {
	Written int
	Kept    int
	Failed  int
}

// Folder transcribes every image of inDir into outDir. Failed images are
// logged and counted; the run fails only when no image succeeded.
func (t *Transcriber) Folder(inDir, outDir string) (Stats, error) {
	var st Stats
	log := t.Log
	if log == nil {
		log = logging.Discard()
	}
	images, err := Images(inDir)
	if err != nil {
		return st, err
	}
	if len(images) == 0 {
		return st, fmt.Errorf("no images in %s", inDir)
	}

	for _, name := range images {
		dst := filepath.Join(outDir, TextName(name))
		if !t.Force && util.Exists(dst) {
			st.Kept++
			log.Debug("transcription exists, kept", "image", name)
			continue
		}
		buf, err := util.Read(filepath.Join(inDir, name))
		if err != nil {
			st.Failed++
			log.Error("read failed", "image", name, "err", err)
			continue
		}
		result, err := t.Client.Run(buf)
		if err != nil {
			st.Failed++
			log.Error("ocr failed", "image", name, "err", err)
			continue
		}
		if err := util.Write([]byte(result.FullText), dst); err != nil {
			return st, err
		}
		st.Written++
		log.Info("transcribed", "image", name, "service", result.Service, "ms", result.Duration)
	}
	if st.Failed > 0 && st.Written == 0 && st.Kept == 0 {
		return st, fmt.Errorf("all %d images failed in %s", st.Failed, inDir)
	}
	return st, nil
}
