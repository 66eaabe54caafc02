package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
)

type Options struct {
	Debug bool
}

type command struct {
	out   io.Writer
	debug bool
}

func (c *command) writer() io.Writer {
	if c.out == nil {
		return os.Stdout
	}

	return c.out
}

func (c *command) options(args []any) {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok && options != nil {
			c.debug = options.Debug
		}
	}
}

func (c *command) flagset(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

func helpOptions(flagset *flag.FlagSet) {
	printOptions(os.Stdout, flagset, flag.CommandLine)
}

func printOptions(w io.Writer, flagset *flag.FlagSet, global *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(w, "    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Options:")
	global.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(w, "    --%-13s %s\n", f.Name, f.Usage)
	})
}
