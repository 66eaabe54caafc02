package guide

import (
	"fmt"
	"io"
)

type EnvVar struct {
	Name        string
	Description string
}

var steps = []string{
	"Go to Google Cloud Console (https://console.cloud.google.com/)",
	"Create a new project or select existing one",
	"Enable Google Sheets API",
	"Create credentials (Service Account or OAuth 2.0)",
	"Download the credentials JSON file",
	"Set up environment variables",
}

var serviceAccount = []EnvVar{
	{"GOOGLE_SHEETS_PRIVATE_KEY", "service account private key"},
	{"GOOGLE_SHEETS_CLIENT_EMAIL", "service account client email"},
	{"GOOGLE_SHEETS_PROJECT_ID", "Google Cloud project ID"},
}

var oauth = []EnvVar{
	{"GOOGLE_CLIENT_ID", "OAuth 2.0 client ID"},
	{"GOOGLE_CLIENT_SECRET", "OAuth 2.0 client secret"},
	{"GOOGLE_REDIRECT_URI", "OAuth 2.0 redirect URI"},
}

func Steps() []string {
	return append([]string{}, steps...)
}

func ServiceAccountVars() []EnvVar {
	return append([]EnvVar{}, serviceAccount...)
}

func OAuthVars() []EnvVar {
	return append([]EnvVar{}, oauth...)
}

// PrintSteps writes the numbered console steps followed by the environment
// variables for both credential types.
func PrintSteps(w io.Writer) error {
	lines := []string{"Instructions for setting up Google Sheets API:", ""}

	list := Steps()
	for i, s := range list {
		lines = append(lines, fmt.Sprintf("  %v. %s", i+1, s))
		if i == len(list)-1 {
			for _, v := range ServiceAccountVars() {
				lines = append(lines, fmt.Sprintf("       - %-27s %s", v.Name, v.Description))
			}
		}
	}

	lines = append(lines, "", "For OAuth 2.0 (recommended for user authentication):")
	for _, v := range OAuthVars() {
		lines = append(lines, fmt.Sprintf("  - %-27s %s", v.Name, v.Description))
	}

	return writeLines(w, lines)
}
