package ocr

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	texts map[string]string
	calls int
}

// Images are written holding their own key, so Run can look the text up.
func (f *fakeClient) Run(image []byte) (*Result, error) {
	f.calls++
	text, ok := f.texts[string(image)]
	if !ok {
		return nil, errors.New("unreadable image")
	}
	return &Result{Service: "fake", FullText: text}, nil
}

func writeImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0600))
	}
	return dir
}

func TestImagesFiltersAndSorts(t *testing.T) {
	dir := writeImages(t, "b.TIF", "a.png", "notes.txt", "c.jpeg")
	images, err := Images(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.TIF", "c.jpeg"}, images)
}

func TestTextName(t *testing.T) {
	assert.Equal(t, "page-01.txt", TextName("page-01.tif"))
	assert.Equal(t, "scan.v2.txt", TextName("scan.v2.png"))
}

func TestTranscriberFolder(t *testing.T) {
	in := writeImages(t, "a.png", "b.png", "c.png")
	out := filepath.Join(t.TempDir(), "txt_fake")
	client := &fakeClient{texts: map[string]string{"a.png": "Il gatto dorme.", "b.png": "La casa e bella."}}

	tr := &Transcriber{Client: client}
	st, err := tr.Folder(in, out)
	require.NoError(t, err)
	assert.Equal(t, Stats{Written: 2, Failed: 1}, st)

	text, err := os.ReadFile(filepath.Join(out, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "La casa e bella.", string(text))
	assert.NoFileExists(t, filepath.Join(out, "c.txt"))

	// Second run keeps existing files
	st, err = tr.Folder(in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Kept)
	assert.Equal(t, 4, client.calls)

	tr.Force = true
	st, err = tr.Folder(in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Written)
}

func TestTranscriberAllFailed(t *testing.T) {
	in := writeImages(t, "x.png")
	_, err := (&Transcriber{Client: &fakeClient{}}).Folder(in, t.TempDir())
	assert.Error(t, err)
}

func TestTranscriberNoImages(t *testing.T) {
	_, err := (&Transcriber{Client: &fakeClient{}}).Folder(t.TempDir(), t.TempDir())
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("GCP", "/keys", "it-IT")
	require.NoError(t, err)
	assert.Equal(t, []string{"it"}, c.(*GCPClient).LanguageHints)

	c, err = NewClient("azure", "/keys", "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", c.(AzureClient).Language)

	c, err = NewClient("aws", "/keys", "it")
	require.NoError(t, err)
	assert.Equal(t, "/keys", c.(AWSClient).CredentialsPath)

	_, err = NewClient("easyocr", "", "it")
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	fake := &fakeClient{}
	Register("Fake", func(_, _ string) (Client, error) { return fake, nil })
	assert.Contains(t, Engines(), "fake")
	c, err := NewClient("fake", "", "it")
	require.NoError(t, err)
	assert.Same(t, fake, c)
}

func TestTesseractLanguage(t *testing.T) {
	for locale, want := range map[string]string{"it": "ita", "de-CH": "deu", "en": "eng", "fr": "fra"} {
		got, err := TesseractLanguage(locale)
		require.NoError(t, err)
		assert.Equal(t, want, got, locale)
	}
}

func TestAzureCredentials(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "azure.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"subscription_key":"k"}`), 0600))
	_, err := loadCredentials(name)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(name, []byte(`{"subscription_key":"k","endpoint":"https://x/"}`), 0600))
	c, err := loadCredentials(name)
	require.NoError(t, err)
	assert.Equal(t, "https://x/", c.Endpoint)
}

func TestAzureResponseText(t *testing.T) {
	r := azureVisionResponse{Regions: []azureRegion{{Lines: []azureLine{
		{Words: []azureWord{{Text: "Il"}, {Text: "gatto"}}},
		{Words: []azureWord{{Text: "dorme."}}},
	}}}}
	assert.Equal(t, "Il gatto\ndorme.", r.text())
}
