package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// namedCodes maps Vim-style key names (lowercased) to codes.
var namedCodes = map[string]Code{
	"esc":       CodeEscape,
	"escape":    CodeEscape,
	"cr":        CodeEnter,
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"tab":       CodeTab,
	"space":     CodeSpace,
	"bs":        CodeBackspace,
	"backspace": CodeBackspace,
	"lt":        FromRune('<'),
}

// ParseSequence parses a key specification into codes.
//
// Supported formats:
//   - Plain characters: "w", "$", "0" map to their character codes
//   - Vim-style names: "<Esc>", "<CR>", "<Tab>", "<Space>", "<BS>", "<lt>"
//   - Raw codes: "<27>", "<119>"
func ParseSequence(spec string) ([]Code, error) {
	var codes []Code

	rest := spec
	for rest != "" {
		if rest[0] != '<' {
			r, size := utf8.DecodeRuneInString(rest)
			codes = append(codes, FromRune(r))
			rest = rest[size:]
			continue
		}

		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, rest)
		}
		if end == 1 {
			// "<>" is a literal '<' followed by '>'
			codes = append(codes, FromRune('<'))
			rest = rest[1:]
			continue
		}

		code, err := parseName(rest[1:end])
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
		rest = rest[end+1:]
	}

	return codes, nil
}

// parseName resolves the text between angle brackets.
func parseName(name string) (Code, error) {
	if code, ok := namedCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 {
		return Code(n), nil
	}
	return 0, fmt.Errorf("%w: unknown key name %q", ErrInvalidSpec, name)
}
