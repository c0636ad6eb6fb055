package ocr

import (
	"encoding/json"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/textract"
)

type AWSClient struct {
	CredentialsPath string
}

// Method required by ocr.Client
// Returns AWS document text detection Result
// Reference: https://docs.aws.amazon.com/textract/
func (c AWSClient) Run(image []byte) (*Result, error) {
	const (
		service    = "AWS"
		keyName    = "credentials"
		configName = "config"
	)

	credentialsFile := path.Join(c.CredentialsPath, keyName)
	configFile := path.Join(c.CredentialsPath, configName)

	config := aws.Config{
		MaxRetries: aws.Int(3),
	}
	s, err := session.NewSessionWithOptions(
		session.Options{
			SharedConfigFiles: []string{credentialsFile, configFile},
			SharedConfigState: session.SharedConfigEnable,
		},
	)
	if err != nil {
		return nil, err
	}
	client := textract.New(s, &config)

	ddti := textract.DetectDocumentTextInput{
		Document: &textract.Document{Bytes: image},
	}

	start := time.Now()
	result, err := client.DetectDocumentText(&ddti)
	milli := int64(time.Since(start) / time.Millisecond)
	if err != nil {
		return nil, err
	}

	version := aws.StringValue(result.DetectDocumentTextModelVersion)
	fullText := linesText(result.Blocks)

	date := fmtTime(start.UTC())

	encoded, err := json.Marshal(result)
	return &Result{
		Service:  service,
		Version:  version,
		FullText: fullText,
		Duration: milli,
		Date:     date,
		Raw:      encoded,
	}, err
}

// linesText joins the LINE blocks in reading order.
func linesText(blocks []*textract.Block) string {
	var lines []string
	for _, block := range blocks {
		if aws.StringValue(block.BlockType) == textract.BlockTypeLine && aws.Float64Value(block.Confidence) >= 0.0 {
			lines = append(lines, aws.StringValue(block.Text))
		}
	}
	return strings.Join(lines, "\n")
}
