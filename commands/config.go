package commands

import (
	"flag"
	"fmt"

	"github.com/whatsapp-sheets-sync/sheets-setup/guide"
)

var ConfigCmd = Config{
	format: guide.Text,
}

type Config struct {
	command
	format string
}

func (cmd *Config) Name() string {
	return "config"
}

func (cmd *Config) Description() string {
	return "Displays the Google Sheets API setup configuration as text, JSON or YAML"
}

func (cmd *Config) Usage() string {
	return "[--format text|json|yaml]"
}

func (cmd *Config) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s config [--format <format>]\n", APP)
	fmt.Println()
	fmt.Println("  Displays the dependencies, OAuth scopes and API version required for the Google Sheets API")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s config --format yaml > google-sheets.yaml\n", APP)
	fmt.Println()
}

func (cmd *Config) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("config")

	flagset.StringVar(&cmd.format, "format", cmd.format, "Output format (text, json or yaml). Defaults to text")

	return flagset
}

func (cmd *Config) Execute(args ...any) error {
	cmd.options(args)

	if cmd.debug {
		debugf("config format:%s", cmd.format)
	}

	config := guide.NewConfig()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration (%w)", err)
	}

	return guide.Render(cmd.writer(), config, cmd.format)
}
