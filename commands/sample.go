package commands

import (
	"flag"
	"fmt"

	"github.com/whatsapp-sheets-sync/sheets-setup/guide"
)

var SampleCmd = Sample{
	lang: guide.JS,
}

type Sample struct {
	command
	lang string
}

func (cmd *Sample) Name() string {
	return "sample"
}

func (cmd *Sample) Description() string {
	return "Displays the sample implementation code for the Google Sheets API"
}

func (cmd *Sample) Usage() string {
	return "[--lang js|go]"
}

func (cmd *Sample) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s sample [--lang <language>]\n", APP)
	fmt.Println()
	fmt.Println("  Displays the structure of a Google Sheets API client that reads the A:E range of a worksheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s sample --lang go\n", APP)
	fmt.Println()
}

func (cmd *Sample) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sample")

	flagset.StringVar(&cmd.lang, "lang", cmd.lang, "Sample code language (js or go). Defaults to js")

	return flagset
}

func (cmd *Sample) Execute(args ...any) error {
	code, err := guide.Sample(cmd.lang)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.writer(), code)

	return err
}
