package commands

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/whatsapp-sheets-sync/sheets-setup/guide"
)

var CheckCmd = Check{
	credentials: DEFAULT_CREDENTIALS,
	url:         "",
	env:         false,
	lookup:      os.LookupEnv,
}

// Check validates the local setup without contacting Google: the spreadsheet URL,
// the downloaded credentials file and the environment variables.
type Check struct {
	command
	credentials string
	url         string
	env         bool
	lookup      func(string) (string, bool)
}

func (cmd *Check) Name() string {
	return "check"
}

func (cmd *Check) Description() string {
	return "Checks a Google Sheets URL, credentials file and environment variables"
}

func (cmd *Check) Usage() string {
	return "[--credentials <file>] [--url <url>] [--env]"
}

func (cmd *Check) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] check [--credentials <file>] [--url <URL>] [--env]\n", APP)
	fmt.Println()
	fmt.Println("  Checks the Google Sheets setup offline. A credentials file is parsed but never used to")
	fmt.Println("  request a token and environment variable values are not displayed. The default credentials")
	fmt.Println("  file is skipped if it does not exist and --url or --env is given.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s check --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
	fmt.Printf(`    %s check --credentials "" --env`+"\n", APP)
	fmt.Println()
}

func (cmd *Check) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("check")

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.BoolVar(&cmd.env, "env", cmd.env, "Reports which of the Google Sheets environment variables are set")

	return flagset
}

func (cmd *Check) Execute(args ...any) error {
	cmd.options(args)

	credentials := strings.TrimSpace(cmd.credentials)
	url := strings.TrimSpace(cmd.url)

	if credentials == "" && url == "" && !cmd.env {
		return fmt.Errorf("at least one of --credentials, --url or --env is required")
	}

	if credentials == DEFAULT_CREDENTIALS && (url != "" || cmd.env) {
		if _, err := os.Stat(credentials); errors.Is(err, fs.ErrNotExist) {
			if cmd.debug {
				debugf("skipping missing default credentials file %s", credentials)
			}

			credentials = ""
		}
	}

	sections := [][]string{}

	if url != "" {
		if cmd.debug {
			debugf("checking spreadsheet URL %s", url)
		}

		spreadsheet, err := guide.ParseURL(url)
		if err != nil {
			return err
		}

		sections = append(sections, cmd.spreadsheet(spreadsheet))
	}

	if credentials != "" {
		if cmd.debug {
			debugf("checking credentials file %s", credentials)
		}

		c, err := guide.LoadCredentials(credentials, guide.NewConfig().Scopes...)
		if err != nil {
			return fmt.Errorf("invalid credentials file %s (%w)", credentials, err)
		}

		sections = append(sections, cmd.print(credentials, c))
	}

	missing := 0
	if cmd.env {
		lookup := cmd.lookup
		if lookup == nil {
			lookup = os.LookupEnv
		}

		var lines []string

		lines, missing = cmd.environment(guide.Environment(lookup))
		sections = append(sections, lines)
	}

	w := cmd.writer()
	for i, section := range sections {
		if i > 0 {
			section = append([]string{""}, section...)
		}

		for _, line := range section {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	if missing > 0 {
		warnf("%v Google Sheets environment variables not set", missing)
	}

	return nil
}

func (cmd *Check) spreadsheet(s *guide.Spreadsheet) []string {
	return []string{
		"Spreadsheet",
		fmt.Sprintf("  %-11s %s", "ID:", s.ID),
		fmt.Sprintf("  %-11s %s", "CSV export:", s.Export),
	}
}

func (cmd *Check) print(file string, c *guide.Credentials) []string {
	lines := []string{
		"Credentials",
		fmt.Sprintf("  %-11s %s", "file:", file),
		fmt.Sprintf("  %-11s %s", "type:", c.Kind),
		fmt.Sprintf("  %-11s %s", "identity:", c.Identity),
		fmt.Sprintf("  %-11s %s", "project:", c.ProjectID),
		fmt.Sprintf("  %-11s %s", "token URL:", c.TokenURL),
		fmt.Sprintf("  %-11s %v", "scopes:", c.Scopes),
	}

	if c.AuthURL != "" {
		lines = append(lines, fmt.Sprintf("  %-11s %s", "auth URL:", c.AuthURL))
	}

	return lines
}

func (cmd *Check) environment(list []guide.EnvStatus) ([]string, int) {
	lines := []string{"Environment"}
	missing := 0

	for _, v := range list {
		status := "not set"
		if v.Set {
			status = "set"
		} else {
			missing++
		}

		lines = append(lines, fmt.Sprintf("  %-27s %s", v.Name, status))
	}

	return lines, missing
}
