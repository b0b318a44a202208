package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codalotl/termstyle/internal/cli"
)

func runTermstyle(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Run(context.Background(), newRootCommand(), cli.Options{
		Args: args,
		In:   strings.NewReader(stdin),
		Out:  &out,
		Err:  &errOut,
	})
	return code, out.String(), errOut.String()
}

func TestRootRequiresSubcommand(t *testing.T) {
	code, _, stderr := runTermstyle(t, "")
	require.Equal(t, 2, code)
	assert.Contains(t, stderr, "missing required subcommand")
	assert.Contains(t, stderr, "Usage:")
}

func TestMarkupCommand(t *testing.T) {
	t.Run("rendersTaggedText", func(t *testing.T) {
		code, stdout, stderr := runTermstyle(t, "", "markup", "[bold]Hi[/] there")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "\x1b[1mHi\x1b[0m there\n", stdout)
	})

	t.Run("baseStyleFlagAppliesUnderTags", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "markup", "-s", "red", "[bold]Hi[/]")
		require.Equal(t, 0, code)
		assert.Equal(t, "\x1b[1;31mHi\x1b[0m\n", stdout)
	})

	t.Run("colorSystemDowngradesTrueColor", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "",
			"--color-system", "standard", "markup", "[#ff0000]x[/]")
		require.Equal(t, 0, code)
		assert.Equal(t, "\x1b[31mx\x1b[0m\n", stdout)
	})

	t.Run("invalidStyleFlagIsUsageError", func(t *testing.T) {
		code, _, stderr := runTermstyle(t, "", "markup", "-s", "nonsense", "x")
		require.Equal(t, 2, code)
		assert.Contains(t, stderr, "invalid --style")
	})

	t.Run("unbalancedBracketIsRuntimeError", func(t *testing.T) {
		code, _, stderr := runTermstyle(t, "", "markup", "[bold")
		require.Equal(t, 1, code)
		assert.Contains(t, stderr, "markup:")
		assert.NotContains(t, stderr, "Usage:")
	})
}

func TestStripCommand(t *testing.T) {
	t.Run("argMode", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "strip", "\x1b[1mbold\x1b[0m plain")
		require.Equal(t, 0, code)
		assert.Equal(t, "bold plain\n", stdout)
	})

	t.Run("stdinModePassesTextThrough", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "a\x1b[31mb\x1b[0m\n", "strip")
		require.Equal(t, 0, code)
		assert.Equal(t, "ab\n", stdout)
	})
}

func TestWidthCommand(t *testing.T) {
	t.Run("plainText", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "width", "héllo")
		require.Equal(t, 0, code)
		assert.Equal(t, "bytes: 6\ncells: 5\nprintable: 5\n", stdout)
	})

	t.Run("ansiInputSeparatesCellAndPrintableWidth", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "width", "\x1b[1m世界\x1b[0m")
		require.Equal(t, 0, code)
		assert.Equal(t, "bytes: 14\ncells: 10\nprintable: 4\n", stdout)
	})

	t.Run("stdinModeTrimsTrailingNewline", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "héllo\n", "width")
		require.Equal(t, 0, code)
		assert.Equal(t, "bytes: 6\ncells: 5\nprintable: 5\n", stdout)
	})
}

func TestContrastCommand(t *testing.T) {
	t.Run("blackOnWhiteIsMaxContrast", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "contrast", "#ffffff", "#000000")
		require.Equal(t, 0, code)
		assert.Equal(t, "21.00 (AAA)\n", stdout)
	})

	t.Run("invalidColorIsRuntimeError", func(t *testing.T) {
		code, _, stderr := runTermstyle(t, "", "contrast", "notacolor", "#000000")
		require.Equal(t, 1, code)
		assert.Contains(t, stderr, "color: cannot parse")
	})

	t.Run("missingArgIsUsageError", func(t *testing.T) {
		code, _, stderr := runTermstyle(t, "", "contrast", "#ffffff")
		require.Equal(t, 2, code)
		assert.Contains(t, stderr, "expected 2 args, got 1")
	})
}

func TestDiffCommand(t *testing.T) {
	code, stdout, _ := runTermstyle(t, "", "diff", "cat", "dog")
	require.Equal(t, 0, code)
	assert.Equal(t, "\x1b[9;31mcat\x1b[0m\x1b[32mdog\x1b[0m\n", stdout)
}

func TestDemoCommand(t *testing.T) {
	t.Setenv("COLUMNS", "")

	t.Run("truecolorSheet", func(t *testing.T) {
		code, stdout, stderr := runTermstyle(t, "", "demo")
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "capability sheet (truecolor)")
		assert.Contains(t, stdout, "\x1b[48;5;") // palette ramp
		assert.Contains(t, stdout, "\x1b[48;2;") // gradient
		assert.Contains(t, stdout, "markup")
	})

	t.Run("palette256DowngradesGradients", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "demo", "--color-system", "256")
		require.Equal(t, 0, code)
		assert.Contains(t, stdout, "\x1b[48;5;")
		assert.NotContains(t, stdout, "\x1b[48;2;")
	})

	t.Run("standardDowngradesEverything", func(t *testing.T) {
		code, stdout, _ := runTermstyle(t, "", "demo", "--color-system", "standard")
		require.Equal(t, 0, code)
		assert.NotContains(t, stdout, "48;5;")
		assert.NotContains(t, stdout, "48;2;")
	})

	t.Run("invalidColorSystemIsUsageError", func(t *testing.T) {
		code, _, stderr := runTermstyle(t, "", "demo", "--color-system", "vga")
		require.Equal(t, 2, code)
		assert.Contains(t, stderr, "invalid --color-system")
	})
}
