// Package guide holds the static Google Sheets API setup information and the
// functions that render it.
package guide

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

const APIVersion = "v4"

// Config is the setup summary displayed to the user. NewConfig returns a fresh
// copy on every call.
type Config struct {
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
	APIVersion   string   `json:"api_version" yaml:"api_version"`
}

func NewConfig() Config {
	return Config{
		Dependencies: []string{
			"googleapis",
			"google-auth",
			"google-auth-oauthlib",
		},
		Scopes: []string{
			sheets.SpreadsheetsScope,
			drive.DriveReadonlyScope,
		},
		APIVersion: APIVersion,
	}
}

// Validate checks that the dependency list has 3 distinct entries, that there are
// 2 https:// scopes and that every field is valid UTF-8.
func (c Config) Validate() error {
	if len(c.Dependencies) != 3 {
		return fmt.Errorf("expected 3 dependencies, got %v", len(c.Dependencies))
	}

	seen := map[string]bool{}
	for _, d := range c.Dependencies {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("blank dependency name")
		} else if !utf8.ValidString(d) {
			return fmt.Errorf("invalid dependency name %q", d)
		} else if seen[d] {
			return fmt.Errorf("duplicate dependency '%s'", d)
		}

		seen[d] = true
	}

	if len(c.Scopes) != 2 {
		return fmt.Errorf("expected 2 scopes, got %v", len(c.Scopes))
	}

	for _, s := range c.Scopes {
		if !utf8.ValidString(s) || !strings.HasPrefix(s, "https://") {
			return fmt.Errorf("invalid scope '%s'", s)
		}
	}

	if strings.TrimSpace(c.APIVersion) == "" || !utf8.ValidString(c.APIVersion) {
		return fmt.Errorf("missing/invalid API version")
	}

	return nil
}
