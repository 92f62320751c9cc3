package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// errNoResult reports that a formatter or validator produced no value.
var errNoResult = errors.New("no result")

// commandKey holds the name of the running command in its context.
type commandKey struct{}

// Command is a single CLI command.
type Command struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Run         func(ctx context.Context, args []string, out io.Writer) error
}

// NewFlagSet creates a flag set whose usage prints the command help to out.
func (c *Command) NewFlagSet(out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { c.PrintUsage(out) }
	return fs
}

func (c *Command) PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", c.Description)
	fmt.Fprintf(w, "USAGE:\n    %s\n\n", c.Usage)
	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "EXAMPLES:\n")
		for _, example := range c.Examples {
			fmt.Fprintf(w, "    %s\n", example)
		}
	}
}

// CommandRegistry dispatches to registered commands by name.
type CommandRegistry struct {
	commands map[string]*Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]*Command)}
}

func (r *CommandRegistry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Execute runs the command named by args[0] with its name stored in ctx.
func (r *CommandRegistry) Execute(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 {
		r.PrintHelp(out)
		return fmt.Errorf("no command specified")
	}

	switch args[0] {
	case "help", "-h", "--help":
		r.PrintHelp(out)
		return nil
	}

	cmd, ok := r.commands[args[0]]
	if !ok {
		r.PrintHelp(out)
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd.Run(context.WithValue(ctx, commandKey{}, cmd.Name), args[1:], out)
}

func (r *CommandRegistry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "brkit - format and validate Brazilian documents, money and dates")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    brkit <command> <value> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "COMMANDS:")

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "    %-10s %s\n", name, r.commands[name].Description)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'brkit <command> --help' for more information on a command.")
}
