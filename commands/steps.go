package commands

import (
	"flag"
	"fmt"

	"github.com/whatsapp-sheets-sync/sheets-setup/guide"
)

var StepsCmd = Steps{}

type Steps struct {
	command
}

func (cmd *Steps) Name() string {
	return "steps"
}

func (cmd *Steps) Description() string {
	return "Lists the Google Cloud Console steps and the environment variables used by the application"
}

func (cmd *Steps) Usage() string {
	return ""
}

func (cmd *Steps) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s steps\n", APP)
	fmt.Println()
	fmt.Println("  Lists the steps for creating Google Sheets API credentials and the environment variables")
	fmt.Println("  for service account and OAuth 2.0 authentication. The environment is not read.")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Steps) FlagSet() *flag.FlagSet {
	return cmd.flagset("steps")
}

func (cmd *Steps) Execute(args ...any) error {
	return guide.PrintSteps(cmd.writer())
}
