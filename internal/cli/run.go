package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Options configure Run. Zero fields fall back to os defaults.
type Options struct {
	// Args is the argv excluding the program name, typically os.Args[1:].
	Args []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler. Flag values are read through
// the pointers bound at command construction time.
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes a command tree as a CLI program and returns the process
// exit code: 0 on success, 1 for runtime errors, 2 for usage errors.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil || root.Name == "" {
		panic("cli: Run needs a named root command")
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	selected, args, parseErr := parseArgv(root, opts.Args, out)
	if parseErr != nil {
		if errors.Is(parseErr, errHelpPrinted) {
			return 0
		}
		printUsageError(root, selected, parseErr, errOut)
		return 2
	}

	if selected.Run == nil {
		if len(args) == 0 {
			printUsageError(root, selected, usageErrorf("missing required subcommand"), errOut)
		} else {
			printUsageError(root, selected, usageErrorf("unknown subcommand: %s", args[0]), errOut)
		}
		return 2
	}

	if selected.Args != nil {
		if err := selected.Args(args); err != nil {
			return exitFor(root, selected, err, errOut, true)
		}
	}

	c := &Context{
		Context: ctx,
		Command: selected,
		Args:    args,
		In:      in,
		Out:     out,
		Err:     errOut,
	}
	if err := selected.Run(c); err != nil {
		return exitFor(root, selected, err, errOut, false)
	}
	return 0
}

var errHelpPrinted = errors.New("help printed")

func parseArgv(root *Command, argv []string, out io.Writer) (*Command, []string, error) {
	selected := root
	selectionEnded := false
	flagsEnded := false
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if flagsEnded {
			positional = append(positional, argv[i:]...)
			break
		}

		if token == "--" {
			flagsEnded = true
			selectionEnded = true
			continue
		}

		if token == "-h" || token == "--help" {
			writeHelp(out, root, selected)
			return selected, nil, errHelpPrinted
		}

		if strings.HasPrefix(token, "-") && token != "-" {
			byName, byShort := flagsInScope(selected)
			consumed, err := parseFlag(byName, byShort, token, argv, i)
			if err != nil {
				return selected, nil, err
			}
			i += consumed
			continue
		}

		if !selectionEnded {
			if child := selected.child(token); child != nil {
				selected = child
				continue
			}
			selectionEnded = true
		}
		positional = append(positional, token)
	}
	return selected, positional, nil
}

// parseFlag handles "--name", "--name=value", "-c", and "-c=value"
// tokens, returning how many following argv entries it consumed.
func parseFlag(byName map[string]*flag, byShort map[rune]*flag, token string, argv []string, i int) (int, error) {
	var f *flag
	inline := ""
	hasInline := false

	if strings.HasPrefix(token, "--") {
		body := token[2:]
		if eq := strings.IndexByte(body, '='); eq >= 0 {
			body, inline, hasInline = body[:eq], body[eq+1:], true
		}
		f = byName[body]
	} else if len(token) >= 2 {
		body := token[1:]
		if len(body) >= 2 && body[1] == '=' {
			inline, hasInline = body[2:], true
			body = body[:1]
		}
		if len(body) == 1 {
			f = byShort[rune(body[0])]
		}
	}
	if f == nil {
		return 0, usageErrorf("unknown flag: %s", token)
	}

	consumed := 0
	raw := inline
	if !hasInline {
		switch {
		case f.kind == flagBool:
			raw = "true"
			if i+1 < len(argv) {
				if _, err := strconv.ParseBool(argv[i+1]); err == nil {
					raw = argv[i+1]
					consumed = 1
				}
			}
		case i+1 >= len(argv) || argv[i+1] == "--":
			return 0, usageErrorf("flag needs a value: %s", token)
		default:
			raw = argv[i+1]
			consumed = 1
		}
	}

	if err := f.set(raw); err != nil {
		return 0, usageErrorf("invalid value for %s: %v", f.display(), err)
	}
	return consumed, nil
}

// exitFor maps a handler or args-validation error to an exit code.
// ExitCoders keep their code; anything else is a runtime error (1),
// except args errors which default to usage errors (2).
func exitFor(root, cmd *Command, err error, errOut io.Writer, argsPhase bool) int {
	var ec ExitCoder
	if errors.As(err, &ec) {
		code := ec.ExitCode()
		switch {
		case code == 2:
			printUsageError(root, cmd, err, errOut)
			return 2
		case code == 0:
			return 0
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(errOut, msg)
		}
		return code
	}

	if argsPhase {
		printUsageError(root, cmd, err, errOut)
		return 2
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
	}
	return 1
}

func printUsageError(root, cmd *Command, err error, errOut io.Writer) {
	if err != nil && !errors.Is(err, errHelpPrinted) {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(errOut, msg)
			fmt.Fprintln(errOut)
		}
	}
	writeHelp(errOut, root, cmd)
}

func writeHelp(w io.Writer, root, cmd *Command) {
	full := displayName(root, cmd)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", full, cmd.Short)
	} else {
		fmt.Fprintln(w, full)
	}

	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine(root, cmd))

	if children := cmd.Commands(); len(children) > 0 {
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		for _, child := range children {
			if child.Short != "" {
				fmt.Fprintf(w, "  %s\t%s\n", child.Name, child.Short)
			} else {
				fmt.Fprintf(w, "  %s\n", child.Name)
			}
		}
	}

	byName, _ := flagsInScope(cmd)
	if flags := sortedFlags(byName); len(flags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		for _, f := range flags {
			fmt.Fprintln(w, flagHelpLine(f))
		}
	}

	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Example:")
		for _, line := range strings.Split(strings.TrimRight(cmd.Example, "\n"), "\n") {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func displayName(root, cmd *Command) string {
	parts := []string{root.Name}
	if cmd != root {
		for _, node := range cmd.path()[1:] {
			parts = append(parts, node.Name)
		}
	}
	return strings.Join(parts, " ")
}

func usageLine(root, cmd *Command) string {
	segments := []string{displayName(root, cmd)}
	if byName, _ := flagsInScope(cmd); len(byName) > 0 {
		segments = append(segments, "[flags]")
	}
	if len(cmd.Commands()) > 0 {
		if cmd.Run == nil {
			segments = append(segments, "<command>")
		} else {
			segments = append(segments, "[command]")
		}
	}
	if cmd.Run != nil {
		segments = append(segments, "[args]")
	}
	return strings.Join(segments, " ")
}

func flagHelpLine(f *flag) string {
	var names string
	if f.shorthand != 0 {
		names = fmt.Sprintf("-%c, --%s", f.shorthand, f.name)
	} else {
		names = fmt.Sprintf("    --%s", f.name)
	}
	suffix := ""
	if f.kind != flagBool {
		suffix = fmt.Sprintf(" <%s>", f.kindName())
	}
	if usage := strings.TrimSpace(f.usage); usage != "" {
		return fmt.Sprintf("  %s%s\t%s", names, suffix, usage)
	}
	return fmt.Sprintf("  %s%s", names, suffix)
}
