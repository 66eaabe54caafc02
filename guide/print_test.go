package guide

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPrint(t *testing.T) {
	expected := `Google Sheets API Setup Configuration:
Dependencies: [googleapis google-auth google-auth-oauthlib]
Required Scopes: [https://www.googleapis.com/auth/spreadsheets https://www.googleapis.com/auth/drive.readonly]
API Version: v4

Sample implementation code structure:

    // Real implementation would look like this:
    
    import { google } from 'googleapis';
    
    const sheets = google.sheets({ version: 'v4', auth });
    
    const response = await sheets.spreadsheets.values.get({
      spreadsheetId: sheetId,
      range: 'A:E',
    });
    
    const rows = response.data.values;
    
`

	var b strings.Builder

	if err := Print(&b, NewConfig()); err != nil {
		t.Fatalf("Unexpected error returned from Print (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect output\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestPrintIsIdempotent(t *testing.T) {
	var first, second bytes.Buffer

	if err := Print(&first, NewConfig()); err != nil {
		t.Fatalf("Unexpected error returned from Print (%v)", err)
	}

	if err := Print(&second, NewConfig()); err != nil {
		t.Fatalf("Unexpected error returned from Print (%v)", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("Output differs between runs\n   first:  %q\n   second: %q\n", first.String(), second.String())
	}
}

type brokenWriter struct{}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrintWithWriterError(t *testing.T) {
	if err := Print(brokenWriter{}, NewConfig()); err == nil {
		t.Errorf("Expected error return for broken writer, got %v", err)
	}
}

func TestRenderText(t *testing.T) {
	expected := `Google Sheets API Setup Configuration:
Dependencies: [googleapis google-auth google-auth-oauthlib]
Required Scopes: [https://www.googleapis.com/auth/spreadsheets https://www.googleapis.com/auth/drive.readonly]
API Version: v4
`

	var b strings.Builder

	if err := Render(&b, NewConfig(), "text"); err != nil {
		t.Fatalf("Unexpected error returned from Render (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect output\n   expected: %s\n   got:      %s\n", expected, b.String())
	}
}

func TestRenderJSON(t *testing.T) {
	expected := `{
  "dependencies": [
    "googleapis",
    "google-auth",
    "google-auth-oauthlib"
  ],
  "scopes": [
    "https://www.googleapis.com/auth/spreadsheets",
    "https://www.googleapis.com/auth/drive.readonly"
  ],
  "api_version": "v4"
}
`

	var b strings.Builder

	if err := Render(&b, NewConfig(), "json"); err != nil {
		t.Fatalf("Unexpected error returned from Render (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect JSON\n   expected: %s\n   got:      %s\n", expected, b.String())
	}
}

func TestRenderYAML(t *testing.T) {
	expected := `dependencies:
  - googleapis
  - google-auth
  - google-auth-oauthlib
scopes:
  - https://www.googleapis.com/auth/spreadsheets
  - https://www.googleapis.com/auth/drive.readonly
api_version: v4
`

	var b strings.Builder

	if err := Render(&b, NewConfig(), "YAML"); err != nil {
		t.Fatalf("Unexpected error returned from Render (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect YAML\n   expected: %s\n   got:      %s\n", expected, b.String())
	}
}

func TestRenderParse(t *testing.T) {
	expected := NewConfig()

	for _, format := range []string{JSON, YAML} {
		var b bytes.Buffer

		if err := Render(&b, expected, format); err != nil {
			t.Fatalf("%s: unexpected error returned from Render (%v)", format, err)
		}

		config, err := parse(&b, format)
		if err != nil {
			t.Fatalf("%s: unexpected error parsing rendered config (%v)", format, err)
		}

		if !reflect.DeepEqual(*config, expected) {
			t.Errorf("%s: incorrect config\n   expected: %v\n   got:      %v\n", format, expected, *config)
		}
	}
}

func TestRenderWithUnknownFormat(t *testing.T) {
	var b strings.Builder

	err := Render(&b, NewConfig(), "toml")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected %v for unknown format, got %v", ErrUnknownFormat, err)
	}

	if b.Len() != 0 {
		t.Errorf("Expected no output for unknown format, got %q", b.String())
	}
}

func TestPrintSteps(t *testing.T) {
	expected := `Instructions for setting up Google Sheets API:

  1. Go to Google Cloud Console (https://console.cloud.google.com/)
  2. Create a new project or select existing one
  3. Enable Google Sheets API
  4. Create credentials (Service Account or OAuth 2.0)
  5. Download the credentials JSON file
  6. Set up environment variables
       - GOOGLE_SHEETS_PRIVATE_KEY   service account private key
       - GOOGLE_SHEETS_CLIENT_EMAIL  service account client email
       - GOOGLE_SHEETS_PROJECT_ID    Google Cloud project ID

For OAuth 2.0 (recommended for user authentication):
  - GOOGLE_CLIENT_ID            OAuth 2.0 client ID
  - GOOGLE_CLIENT_SECRET        OAuth 2.0 client secret
  - GOOGLE_REDIRECT_URI         OAuth 2.0 redirect URI
`

	var b strings.Builder

	if err := PrintSteps(&b); err != nil {
		t.Fatalf("Unexpected error returned from PrintSteps (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect steps\n   expected: %s\n   got:      %s\n", expected, b.String())
	}
}

func TestSample(t *testing.T) {
	js, err := Sample("")
	if err != nil {
		t.Fatalf("Unexpected error returned from Sample (%v)", err)
	} else if !strings.Contains(js, "google.sheets({ version: 'v4', auth })") {
		t.Errorf("Incorrect default sample\n%s", js)
	}

	golang, err := Sample("Go")
	if err != nil {
		t.Fatalf("Unexpected error returned from Sample (%v)", err)
	} else if !strings.Contains(golang, `Spreadsheets.Values.Get(sheetId, "A:E").Do()`) {
		t.Errorf("Incorrect Go sample\n%s", golang)
	}

	if _, err := Sample("cobol"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Expected %v for unknown language, got %v", ErrUnknownLanguage, err)
	}
}

func parse(r io.Reader, format string) (*Config, error) {
	c := Config{}

	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, err
		}

	case YAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownFormat, format)
	}

	return &c, nil
}

func TestSampleKeepsIndentedBlankLines(t *testing.T) {
	js, err := Sample(JS)
	if err != nil {
		t.Fatalf("Unexpected error returned from Sample (%v)", err)
	}

	lines := strings.Split(js, "\n")
	for i, line := range lines[1 : len(lines)-1] {
		if strings.TrimSpace(line) == "" && line != "    " {
			t.Errorf("Incorrect blank line %v - expected:%q, got:%q", i+2, "    ", line)
		}
	}
}
