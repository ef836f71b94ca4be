package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

// command is one REPL verb.
type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them. It
// returns on EOF or when the user types "exit" or "quit". Command errors are
// printed and never stop the loop.
func runREPL(ctx context.Context, cmds map[string]command, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("collabdocs %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printHelp(cmds)
			continue
		}

		cmd, ok := cmds[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				printlnFn("Usage:", cmd.usage)
			} else {
				printlnFn("Error:", describe(err))
			}
		}
	}
}

func printHelp(cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for n := range cmds {
		names = append(names, n)
	}
	sort.Strings(names)

	printlnFn("Available commands:")
	for _, n := range names {
		printlnFn(fmt.Sprintf("  %-40s %s", cmds[n].usage, cmds[n].help))
	}
	printlnFn(fmt.Sprintf("  %-40s %s", "exit | quit", "leave the program"))
}
