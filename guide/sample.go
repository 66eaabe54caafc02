package guide

import (
	"fmt"
	"strings"
)

const (
	JS = "js"
	Go = "go"
)

const sampleJS = `
    // Real implementation would look like this:
    
    import { google } from 'googleapis';
    
    const sheets = google.sheets({ version: 'v4', auth });
    
    const response = await sheets.spreadsheets.values.get({
      spreadsheetId: sheetId,
      range: 'A:E',
    });
    
    const rows = response.data.values;
    `

const sampleGo = `
    // Real implementation would look like this:

    import (
        "google.golang.org/api/option"
        "google.golang.org/api/sheets/v4"
    )

    google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
    if err != nil {
        return err
    }

    response, err := google.Spreadsheets.Values.Get(sheetId, "A:E").Do()
    if err != nil {
        return err
    }

    rows := response.Values
    `

// Sample returns the illustrative code block for a client language. The code is
// only ever displayed.
func Sample(lang string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", JS, "javascript":
		return sampleJS, nil

	case Go, "golang":
		return sampleGo, nil

	default:
		return "", fmt.Errorf("%w '%s'", ErrUnknownLanguage, lang)
	}
}
