package commands

import (
	"flag"
	"fmt"

	"github.com/whatsapp-sheets-sync/sheets-setup/guide"
)

// InstructionsCmd is the default command, run when no command is given on the
// command line.
var InstructionsCmd = Instructions{}

// Instructions prints the Google Sheets API configuration summary and the sample
// implementation code.
type Instructions struct {
	command
}

func (cmd *Instructions) Name() string {
	return "instructions"
}

func (cmd *Instructions) Description() string {
	return "Displays the Google Sheets API setup configuration and sample code (default)"
}

func (cmd *Instructions) Usage() string {
	return ""
}

func (cmd *Instructions) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [instructions]\n", APP)
	fmt.Println()
	fmt.Println("  Displays the dependencies, OAuth scopes and API version required for the Google Sheets API")
	fmt.Println("  followed by the structure of a sample implementation. This is the default command.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s\n", APP)
	fmt.Printf("    %s instructions > google-sheets-setup.txt\n", APP)
	fmt.Println()
}

func (cmd *Instructions) FlagSet() *flag.FlagSet {
	return cmd.flagset("instructions")
}

// ParseCmd rejects anything left on the command line after the flags, so that a
// mistyped command is reported rather than falling through to the default.
func (cmd *Instructions) ParseCmd(args ...string) error {
	flagset := cmd.FlagSet()
	if err := flagset.Parse(args); err != nil {
		return err
	}

	if flagset.NArg() > 0 {
		return fmt.Errorf("unknown command '%s'", flagset.Arg(0))
	}

	return nil
}

func (cmd *Instructions) Execute(args ...any) error {
	return guide.Print(cmd.writer(), guide.NewConfig())
}
