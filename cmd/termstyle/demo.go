package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/internal/cli"
	"github.com/codalotl/termstyle/markup"
	"github.com/codalotl/termstyle/segment"
	"github.com/codalotl/termstyle/style"
)

func newDemoCommand(colorSystem *string) *cli.Command {
	cmd := &cli.Command{
		Name:  "demo",
		Short: "Render a capability sheet: attributes, ramps, gradients, markup.",
		Args:  cli.NoArgs,
		Example: "termstyle demo\n" +
			"termstyle demo --color-system 256",
	}
	cmd.Run = func(c *cli.Context) error {
		sys, err := targetSystem(*colorSystem)
		if err != nil {
			return err
		}
		writeDemoSheet(c.Out, sys)
		return nil
	}
	return cmd
}

func writeDemoSheet(w io.Writer, sys color.System) {
	width := detectTerminalWidth(w)
	if width <= 0 {
		width = 80
	}
	if width > 120 {
		width = 120
	}

	fmt.Fprintf(w, "termstyle capability sheet (%s)\n", sys)

	demoHeading(w, sys, "attributes")
	demoAttributes(w, sys)

	demoHeading(w, sys, "standard colors")
	demoStandardRamp(w, sys)

	demoHeading(w, sys, "256-color palette")
	demoPaletteRamp(w, sys)

	demoHeading(w, sys, "truecolor gradients")
	demoGradients(w, sys, width)

	demoHeading(w, sys, "markup")
	demoMarkup(w, sys)
}

func demoHeading(w io.Writer, sys color.System, title string) {
	bold := style.New().WithBold(true)
	fmt.Fprintf(w, "\n%s%s%s\n", bold.RenderANSI(sys), title, style.ANSIReset)
}

func demoAttributes(w io.Writer, sys color.System) {
	names := []string{
		"bold", "dim", "italic", "underline", "blink",
		"reverse", "conceal", "strike", "overline",
	}
	var segs []segment.Segment
	for _, name := range names {
		st, err := style.Parse(name)
		if err != nil {
			continue
		}
		segs = append(segs, segment.NewStyled(name, st), segment.New(" "))
	}
	link := style.New().WithUnderline(true).WithLink("https://example.com")
	segs = append(segs, segment.NewStyled("link", link))
	fmt.Fprintln(w, segment.RenderString(segs, sys))
}

func demoStandardRamp(w io.Writer, sys color.System) {
	var segs []segment.Segment
	for i := 0; i < 16; i++ {
		st := style.New().WithBackground(color.Standard(uint8(i)))
		segs = append(segs, segment.NewStyled("  ", st))
	}
	fmt.Fprintln(w, segment.RenderString(segs, sys))
}

// demoPaletteRamp draws the 6x6x6 color cube as six rows of 36 cells,
// then the 24-step grayscale ramp.
func demoPaletteRamp(w io.Writer, sys color.System) {
	for row := 0; row < 6; row++ {
		var segs []segment.Segment
		for col := 0; col < 36; col++ {
			idx := uint8(16 + row*36 + col)
			st := style.New().WithBackground(color.Palette(idx))
			segs = append(segs, segment.NewStyled(" ", st))
		}
		fmt.Fprintln(w, segment.RenderString(segs, sys))
	}

	var gray []segment.Segment
	for idx := 232; idx <= 255; idx++ {
		st := style.New().WithBackground(color.Palette(uint8(idx)))
		gray = append(gray, segment.NewStyled(" ", st))
	}
	fmt.Fprintln(w, segment.RenderString(gray, sys))
}

func demoGradients(w io.Writer, sys color.System, width int) {
	from := color.RGB(0xff, 0x5f, 0x00)
	to := color.RGB(0x00, 0x5f, 0xff)

	blends := []struct {
		name string
		fn   func(a, b color.Color, t float64) color.Color
	}{
		{"rgb", color.Blend},
		{"hsl", color.BlendHSL},
	}
	cols := width - 4 // room for the label
	if cols < 8 {
		cols = 8
	}
	for _, blend := range blends {
		var segs []segment.Segment
		for col := 0; col < cols; col++ {
			t := float64(col) / float64(cols-1)
			st := style.New().WithBackground(blend.fn(from, to, t))
			segs = append(segs, segment.NewStyled(" ", st))
		}
		fmt.Fprintf(w, "%s %s\n", segment.RenderString(segs, sys), blend.name)
	}
}

func demoMarkup(w io.Writer, sys color.System) {
	examples := []string{
		"[bold red]error:[/] disk low",
		"[green]ok[/green] [dim](2 warnings)[/]",
		"[underline cyan]nested [bold]tags[/bold] combine[/]",
		`escaped \[brackets\] stay literal`,
	}
	for _, src := range examples {
		t, err := markup.Parse(src, style.New())
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %-44s %s\n", src, t.RenderANSI(sys))
	}
}

// detectTerminalWidth probes w for a terminal width, falling back to
// the COLUMNS environment variable. Returns 0 when neither is usable.
func detectTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && f != nil {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if cols := strings.TrimSpace(os.Getenv("COLUMNS")); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
