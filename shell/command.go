package shell

import (
	"strings"
	"unicode"
)

type Command struct {
	Name string
	Args []string
	Line string
}

// Arg returns the index-th argument or "" when absent.
func (c Command) Arg(index int) string {
	if index < len(c.Args) {
		return c.Args[index]
	}
	return ""
}

// ParseLine splits a console line on blanks. Single or double quotes group
// words; a quote of the other kind inside them is literal. Blank lines and
// lines starting with '#' give an empty Command.
func ParseLine(line string) (cmd Command, err error) {
	cmd.Line = line

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return cmd, nil
	}

	var (
		tokens  []string
		current strings.Builder
		quote   rune
		inToken bool
	)

	for _, ch := range trimmed {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
				continue
			}
			current.WriteRune(ch)
		case ch == '"' || ch == '\'':
			quote = ch
			inToken = true
		case unicode.IsSpace(ch):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(ch)
			inToken = true
		}
	}

	if quote != 0 {
		return cmd, ErrUnterminatedQuote
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	cmd.Name = strings.ToLower(tokens[0])
	cmd.Args = tokens[1:]
	return cmd, nil
}

func (c Command) Empty() bool {
	return c.Name == ""
}
