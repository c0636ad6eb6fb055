package ocr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

type azureClientCredentials struct {
	Key      string `json:"subscription_key"`
	Endpoint string `json:"endpoint"`
}

type azureVisionResponse struct {
	StatusCode  string        `json:"code,omitempty"`
	StatusMsg   string        `json:"message,omitempty"`
	Language    string        `json:"language"`
	Oreintation string        `json:"orientation"`
	Regions     []azureRegion `json:"regions"`
}

type azureRegion struct {
	Bounds string      `json:"boundingBox"`
	Lines  []azureLine `json:"lines"`
}

type azureLine struct {
	Bounds string      `json:"boundingBox"`
	Words  []azureWord `json:"words"`
}

type azureWord struct {
	Bounds string `json:"boundingBox"`
	Text   string `json:"text"`
}

type AzureClient struct {
	CredentialsPath string
	// Language is an ISO 639-1 code, or "unk" to let the service detect it.
	Language string
}

func loadCredentials(credentialsFile string) (*azureClientCredentials, error) {
	f, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, err
	}
	credentials := &azureClientCredentials{}
	if err := json.Unmarshal(f, credentials); err != nil {
		return nil, err
	}
	if credentials.Endpoint == "" || credentials.Key == "" {
		return nil, fmt.Errorf("No 'subscription_key' or 'endpoint' in " +
			credentialsFile)
	}
	return credentials, nil
}

// Method required by ocr.Client
// Returns Azure document text detection Result
// Example: https://docs.microsoft.com/en-us/azure/cognitive-services/computer-vision/quickstarts/go-print-text
func (c AzureClient) Run(image []byte) (*Result, error) {
	const (
		service     = "Azure"
		keyName     = "azure.json"
		uriVersion  = "vision/v2.1/ocr"
		httpTimeout = time.Second * 15
	)

	credentialsFile := path.Join(c.CredentialsPath, keyName)
	credentials, err := loadCredentials(credentialsFile)
	if err != nil {
		return nil, err
	}
	lang := c.Language
	if lang == "" {
		lang = "unk"
	}

	base := credentials.Endpoint + uriVersion
	params := url.Values{"language": {lang}, "detectOrientation": {"false"}}
	uri := base + "?" + params.Encode()

	client := &http.Client{Timeout: httpTimeout}
	req, err := http.NewRequest(http.MethodPost, uri, bytes.NewReader(image))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/octet-stream")
	req.Header.Add("Ocp-Apim-Subscription-Key", credentials.Key)

	start := time.Now()
	response, err := client.Do(req)
	milli := int64(time.Since(start) / time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseJson, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	result := azureVisionResponse{}
	err = json.Unmarshal(responseJson, &result)
	if err != nil {
		return nil, err
	}
	if result.StatusCode != "" {
		err = fmt.Errorf("%v: %v", result.StatusCode, result.StatusMsg)
		return nil, err
	}

	fullText := result.text()

	date := fmtTime(start.UTC())

	encoded, err := json.Marshal(result)
	return &Result{
		Service:  service,
		Version:  uriVersion,
		FullText: fullText,
		Duration: milli,
		Date:     date,
		Raw:      encoded,
	}, err
}

// text joins words with spaces and lines with newlines, region by region.
func (r *azureVisionResponse) text() string {
	var lines []string
	for _, region := range r.Regions {
		for _, line := range region.Lines {
			words := make([]string, len(line.Words))
			for k, word := range line.Words {
				words[k] = word.Text
			}
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return strings.Join(lines, "\n")
}
