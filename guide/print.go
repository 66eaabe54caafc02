package guide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

// Print writes the configuration summary followed by the JavaScript sample code.
// The output depends only on the Config so repeated calls are byte-identical.
func Print(w io.Writer, c Config) error {
	lines := summary(c)
	lines = append(lines, "", "Sample implementation code structure:", sampleJS)

	return writeLines(w, lines)
}

// Render formats the Config as the plain text summary, indented JSON or YAML.
func Render(w io.Writer, c Config, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", Text:
		return writeLines(w, summary(c))

	case JSON:
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s\n", b)
		return err

	case YAML:
		var b bytes.Buffer

		encoder := yaml.NewEncoder(&b)
		encoder.SetIndent(2)

		if err := encoder.Encode(c); err != nil {
			return err
		} else if err := encoder.Close(); err != nil {
			return err
		}

		_, err := w.Write(b.Bytes())
		return err

	default:
		return fmt.Errorf("%w '%s'", ErrUnknownFormat, format)
	}
}

func summary(c Config) []string {
	return []string{
		"Google Sheets API Setup Configuration:",
		fmt.Sprintf("Dependencies: %v", c.Dependencies),
		fmt.Sprintf("Required Scopes: %v", c.Scopes),
		fmt.Sprintf("API Version: %v", c.APIVersion),
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
