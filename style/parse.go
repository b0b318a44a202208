package style

import (
	"strings"

	"github.com/codalotl/termstyle/color"
)

// attrAliases maps attribute names and their single-letter
// abbreviations to attribute bits.
var attrAliases = map[string]Attr{
	"bold": Bold, "b": Bold,
	"dim": Dim, "d": Dim,
	"italic": Italic, "i": Italic,
	"underline": Underline, "u": Underline,
	"blink":  Blink,
	"blink2": Blink2,
	"reverse": Reverse, "r": Reverse,
	"conceal": Conceal, "c": Conceal,
	"strike": Strike, "s": Strike,
	"overline": Overline, "o": Overline,
}

// Parse converts a style definition such as "bold red on white" to a
// Style. Tokens are whitespace-separated: attribute names or
// abbreviations, each optionally preceded by a standalone "not" to
// switch the attribute explicitly off; "on" marks the next color token
// as the background; "link" takes the next token verbatim as a
// hyperlink URL; anything else must parse as a color (the first color
// is the foreground). "none" is accepted and contributes nothing. The
// first unrecognized token aborts with a *ParseError.
func Parse(s string) (Style, error) {
	var out Style
	words := strings.Fields(s)
	negate := false
	background := false

	for i := 0; i < len(words); i++ {
		word := strings.ToLower(words[i])

		switch word {
		case "none":
			if negate || background {
				return Style{}, &ParseError{Token: word, Message: "unknown attribute"}
			}
			continue
		case "not":
			if negate {
				return Style{}, &ParseError{Token: word, Message: `expected attribute after "not"`}
			}
			negate = true
			continue
		case "on":
			if background {
				return Style{}, &ParseError{Token: word, Message: "unknown color"}
			}
			if negate {
				return Style{}, &ParseError{Token: word, Message: "unknown attribute"}
			}
			background = true
			continue
		case "link":
			if negate || background {
				return Style{}, &ParseError{Token: word, Message: "unknown attribute"}
			}
			if i+1 >= len(words) {
				return Style{}, &ParseError{Token: word, Message: `expected URL after "link"`}
			}
			i++
			out = out.WithLink(words[i])
			continue
		}

		if mask, ok := attrAliases[word]; ok {
			if background {
				return Style{}, &ParseError{Token: word, Message: "unknown color"}
			}
			out = out.WithAttr(mask, !negate)
			negate = false
			continue
		}

		c, err := color.Parse(word)
		if err != nil {
			switch {
			case background:
				return Style{}, &ParseError{Token: word, Message: "unknown color"}
			case negate:
				return Style{}, &ParseError{Token: word, Message: "unknown attribute"}
			default:
				return Style{}, &ParseError{Token: word, Message: "not an attribute or color"}
			}
		}
		if negate {
			return Style{}, &ParseError{Token: word, Message: "only attributes can be negated"}
		}
		if background {
			out = out.WithBackground(c)
			background = false
		} else {
			out = out.WithForeground(c)
		}
	}

	if negate {
		return Style{}, &ParseError{Token: "not", Message: `expected attribute after "not"`}
	}
	if background {
		return Style{}, &ParseError{Token: "on", Message: `expected color after "on"`}
	}
	return out, nil
}
