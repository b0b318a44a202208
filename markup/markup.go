// Package markup parses bracket-tag styled strings such as
// "[bold red]error:[/] disk full" into styled text. Tag bodies use the
// style grammar, so anything style.Parse accepts works between
// brackets, and "[name=value]" is shorthand for "[name value]".
package markup

import (
	"fmt"
	"strings"

	"github.com/codalotl/termstyle/style"
	"github.com/codalotl/termstyle/text"
)

// ParseError reports a malformed markup string.
type ParseError struct {
	Pos     int // byte offset of the offending bracket
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: %s at offset %d", e.Message, e.Pos)
}

// Parse interprets bracket tags in src and returns the styled text. An
// open tag pushes the current style combined with the tag's style; a
// close tag, "[/]" or "[/name]", pops one level. Closing more tags than
// were opened is tolerated. "\[" and "\]" escape literal brackets. A tag
// whose body is not a valid style is kept as literal text.
//
// The base style seeds the stack: text outside any tag carries it, and
// tags layer on top of it.
func Parse(src string, base style.Style) (*text.Text, error) {
	out := text.New("")
	stack := []style.Style{base}
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = out.AppendString(buf.String(), stack[len(stack)-1])
		buf.Reset()
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src) && (src[i+1] == '[' || src[i+1] == ']'):
			buf.WriteByte(src[i+1])
			i += 2

		case c == '[':
			end := strings.IndexByte(src[i:], ']')
			if end < 0 {
				return nil, &ParseError{Pos: i, Message: "unbalanced bracket"}
			}
			end += i
			body := src[i+1 : end]
			if body == "" {
				return nil, &ParseError{Pos: i, Message: "invalid tag"}
			}
			if body[0] == '/' {
				flush()
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			} else if st, ok := parseTagStyle(body); ok {
				flush()
				stack = append(stack, stack[len(stack)-1].Combine(st))
			} else {
				buf.WriteString(src[i : end+1])
			}
			i = end + 1

		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()
	return out, nil
}

func parseTagStyle(body string) (style.Style, bool) {
	if name, params, found := strings.Cut(body, "="); found {
		body = name + " " + params
	}
	st, err := style.Parse(body)
	if err != nil {
		return style.Style{}, false
	}
	return st, true
}

// Escape returns s with every bracket escaped so Parse reads it back as
// literal text.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}

// Strip returns the plain text of src with all markup removed.
func Strip(src string) (string, error) {
	t, err := Parse(src, style.New())
	if err != nil {
		return "", err
	}
	return t.Plain(), nil
}
