package guide

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	ServiceAccount = "service account"
	OAuthClient    = "OAuth 2.0 client"
)

var spreadsheetURL = regexp.MustCompile(`^https://docs\.google\.com/spreadsheets/d/([a-zA-Z0-9\-_]+)(?:[/?#].*)?$`)

type Spreadsheet struct {
	ID     string
	Export string
}

// Credentials describes a downloaded Google Cloud credentials file. Inspecting a
// file never contacts Google.
type Credentials struct {
	Kind      string
	Identity  string
	ProjectID string
	TokenURL  string
	AuthURL   string
	Scopes    []string
}

type EnvStatus struct {
	EnvVar
	Set bool
}

// ParseURL extracts the spreadsheet ID from a Google Sheets URL and derives the
// CSV export URL for it.
func ParseURL(url string) (*Spreadsheet, error) {
	match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 {
		return nil, fmt.Errorf("%w - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", ErrInvalidURL)
	}

	return &Spreadsheet{
		ID:     match[1],
		Export: fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", match[1]),
	}, nil
}

func LoadCredentials(file string, scopes ...string) (*Credentials, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return InspectCredentials(b, scopes...)
}

// InspectCredentials identifies a service account key or an OAuth 2.0 client
// secret and parses it with the matching golang.org/x/oauth2/google loader.
func InspectCredentials(b []byte, scopes ...string) (*Credentials, error) {
	var f struct {
		Type        string          `json:"type"`
		ProjectID   string          `json:"project_id"`
		ClientEmail string          `json:"client_email"`
		Installed   json.RawMessage `json:"installed"`
		Web         json.RawMessage `json:"web"`
	}

	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrUnknownCredentials, err)
	}

	switch {
	case f.Type == "service_account":
		config, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrUnknownCredentials, err)
		} else if strings.TrimSpace(config.Email) == "" {
			return nil, fmt.Errorf("%w (missing client_email)", ErrUnknownCredentials)
		}

		return &Credentials{
			Kind:      ServiceAccount,
			Identity:  config.Email,
			ProjectID: f.ProjectID,
			TokenURL:  config.TokenURL,
			Scopes:    config.Scopes,
		}, nil

	case f.Installed != nil || f.Web != nil:
		config, err := google.ConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrUnknownCredentials, err)
		} else if strings.TrimSpace(config.ClientID) == "" {
			return nil, fmt.Errorf("%w (missing client_id)", ErrUnknownCredentials)
		}

		var client struct {
			ProjectID string `json:"project_id"`
		}

		raw := f.Installed
		if raw == nil {
			raw = f.Web
		}

		if err := json.Unmarshal(raw, &client); err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrUnknownCredentials, err)
		}

		return &Credentials{
			Kind:      OAuthClient,
			Identity:  config.ClientID,
			ProjectID: client.ProjectID,
			TokenURL:  config.Endpoint.TokenURL,
			AuthURL:   config.AuthCodeURL("state-token", oauth2.AccessTypeOffline),
			Scopes:    config.Scopes,
		}, nil

	default:
		return nil, fmt.Errorf("%w (expected a service account key or an OAuth 2.0 client secret)", ErrUnknownCredentials)
	}
}

// Environment reports which of the documented variables are set. Values are
// never returned.
func Environment(lookup func(string) (string, bool)) []EnvStatus {
	list := []EnvStatus{}

	for _, v := range append(ServiceAccountVars(), OAuthVars()...) {
		_, ok := lookup(v.Name)
		list = append(list, EnvStatus{EnvVar: v, Set: ok})
	}

	return list
}
