// Command termstyle exercises the styling library from the shell:
// markup rendering, ANSI stripping, width measurement, contrast
// checks, diff highlighting, and a terminal capability sheet.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codalotl/termstyle/ansi"
	"github.com/codalotl/termstyle/cells"
	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/internal/cli"
	"github.com/codalotl/termstyle/internal/debuglog"
	"github.com/codalotl/termstyle/markup"
	"github.com/codalotl/termstyle/style"
	"github.com/codalotl/termstyle/text"
)

func main() {
	debuglog.Log("termstyle argv: %v", os.Args[1:])
	os.Exit(cli.Run(context.Background(), newRootCommand(), cli.Options{
		Args: os.Args[1:],
	}))
}

func newRootCommand() *cli.Command {
	root := &cli.Command{
		Name:  "termstyle",
		Short: "Terminal styling toolkit: colors, styles, markup, and ANSI utilities.",
		Example: "termstyle demo\n" +
			"termstyle markup \"[bold red]error:[/] disk low\"\n" +
			"termstyle contrast \"#ffffff\" \"#000000\"\n" +
			"git log --oneline --color=always | termstyle strip",
	}
	colorSystem := root.PersistentFlags().String("color-system", 0, "truecolor",
		"Target color system: standard, 256, or truecolor.")

	root.AddCommand(
		newDemoCommand(colorSystem),
		newMarkupCommand(colorSystem),
		newStripCommand(),
		newWidthCommand(),
		newContrastCommand(),
		newDiffCommand(colorSystem),
	)
	return root
}

func newMarkupCommand(colorSystem *string) *cli.Command {
	cmd := &cli.Command{
		Name:  "markup",
		Short: "Render bracket markup to ANSI.",
		Args:  cli.ExactArgs(1),
	}
	baseSpec := cmd.Flags().String("style", 's', "",
		"Base style applied under the markup (e.g. \"dim\" or \"white on blue\").")
	cmd.Run = func(c *cli.Context) error {
		sys, err := targetSystem(*colorSystem)
		if err != nil {
			return err
		}
		base := style.New()
		if *baseSpec != "" {
			base, err = style.Parse(*baseSpec)
			if err != nil {
				return cli.UsageError{Message: fmt.Sprintf("invalid --style: %v", err)}
			}
		}
		t, err := markup.Parse(c.Args[0], base)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.Out, t.RenderANSI(sys))
		return nil
	}
	return cmd
}

func newStripCommand() *cli.Command {
	cmd := &cli.Command{
		Name:  "strip",
		Short: "Remove ANSI escape sequences from the argument or stdin.",
		Args:  cli.RangeArgs(0, 1),
	}
	cmd.Run = func(c *cli.Context) error {
		src, fromArgs, err := inputText(c)
		if err != nil {
			return err
		}
		stripped := ansi.Strip(src)
		if fromArgs {
			fmt.Fprintln(c.Out, stripped)
			return nil
		}
		_, err = io.WriteString(c.Out, stripped)
		return err
	}
	return cmd
}

func newWidthCommand() *cli.Command {
	cmd := &cli.Command{
		Name:  "width",
		Short: "Report byte length, cell width, and printable width.",
		Args:  cli.RangeArgs(0, 1),
	}
	cmd.Run = func(c *cli.Context) error {
		src, fromArgs, err := inputText(c)
		if err != nil {
			return err
		}
		if !fromArgs {
			src = strings.TrimSuffix(src, "\n")
		}
		fmt.Fprintf(c.Out, "bytes: %d\n", len(src))
		fmt.Fprintf(c.Out, "cells: %d\n", cells.StringWidth(src))
		fmt.Fprintf(c.Out, "printable: %d\n", ansi.PrintableWidth(src))
		return nil
	}
	return cmd
}

func newContrastCommand() *cli.Command {
	cmd := &cli.Command{
		Name:  "contrast",
		Short: "WCAG contrast ratio and grade for a foreground/background pair.",
		Args:  cli.ExactArgs(2),
	}
	cmd.Run = func(c *cli.Context) error {
		fg, err := color.Parse(c.Args[0])
		if err != nil {
			return err
		}
		bg, err := color.Parse(c.Args[1])
		if err != nil {
			return err
		}
		ratio := color.ContrastRatio(fg, bg)
		fmt.Fprintf(c.Out, "%.2f (%s)\n", ratio, color.GradeFor(ratio))
		return nil
	}
	return cmd
}

func newDiffCommand(colorSystem *string) *cli.Command {
	removed := style.New().WithStrike(true).WithForeground(color.Standard(1))
	added := style.New().WithForeground(color.Standard(2))

	cmd := &cli.Command{
		Name:  "diff",
		Short: "Render a diff-highlighted comparison of two strings.",
		Args:  cli.ExactArgs(2),
	}
	cmd.Run = func(c *cli.Context) error {
		sys, err := targetSystem(*colorSystem)
		if err != nil {
			return err
		}
		t := text.Diff(c.Args[0], c.Args[1], removed, added)
		fmt.Fprintln(c.Out, t.RenderANSI(sys))
		return nil
	}
	return cmd
}

// inputText returns the single positional arg when present, otherwise
// the whole of stdin.
func inputText(c *cli.Context) (string, bool, error) {
	if len(c.Args) > 0 {
		return c.Args[0], true, nil
	}
	b, err := io.ReadAll(c.In)
	if err != nil {
		return "", false, fmt.Errorf("read stdin: %w", err)
	}
	return string(b), false, nil
}

func targetSystem(raw string) (color.System, error) {
	sys, err := color.ParseSystem(raw)
	if err != nil {
		return 0, cli.UsageError{Message: fmt.Sprintf("invalid --color-system: %v", err)}
	}
	return sys, nil
}
