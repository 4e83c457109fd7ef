package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single binding token into an Event.
//
// Supported forms:
//   - Single character: "a", "G", "1"
//   - Bracketed special: "<Esc>", "<CR>", "<PageUp>"
//   - Bracketed with modifiers: "<C-x>", "<S-G>", "<C-S-Left>", "<A-12>"
//
// Modifier letters are A (Alt), C (Control), M (Meta), S (Shift). The
// key part may be a special-key name, an F-number ("F5"), a bare decimal
// number (also a function key), or a single character.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") {
		if !strings.HasSuffix(spec, ">") || len(spec) < 3 {
			return Event{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseBracketed(spec[1 : len(spec)-1])
	}

	r, size := utf8.DecodeRuneInString(spec)
	if size != len(spec) || r == utf8.RuneError {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return NewRuneEvent(r, ModNone), nil
}

// parseBracketed parses the inside of a <...> token: zero or more
// modifier groups separated by hyphens, then the key part.
func parseBracketed(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, group := range parts[:len(parts)-1] {
		if group == "" {
			return Event{}, fmt.Errorf("%w: empty modifier in %q", ErrInvalidSpec, inner)
		}
		// A group may concatenate several modifier letters ("CS").
		for _, r := range group {
			mod := ModifierFromLetter(r)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, r, inner)
			}
			mods = mods.With(mod)
		}
	}

	return parseKeyPart(keyPart, mods)
}

// parseKeyPart resolves the final segment of a bracketed token.
func parseKeyPart(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}

	if k := KeyFromName(keyPart); k != KeyUnknown {
		return NewSpecialEvent(k, mods), nil
	}

	// Function keys: "F5" or a bare number.
	if fn, ok := parseFuncNumber(keyPart); ok {
		return NewFuncEvent(fn, mods), nil
	}

	r, size := utf8.DecodeRuneInString(keyPart)
	if size == len(keyPart) && r != utf8.RuneError {
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// parseFuncNumber recognizes "F<digits>", "f<digits>", or bare digits,
// with the number in 0-255.
func parseFuncNumber(s string) (uint8, bool) {
	digits := s
	if len(s) > 1 && (s[0] == 'F' || s[0] == 'f') && isDigits(s[1:]) {
		digits = s[1:]
	} else if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ParseSequence parses a full binding string: one or more tokens
// concatenated with no delimiter ("gg", "<S-G>", "d<C-x>d").
func ParseSequence(s string) (Sequence, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptySpec
	}

	var seq Sequence
	for i := 0; i < len(s); {
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, s)
			}
			event, err := Parse(s[i : i+end+1])
			if err != nil {
				return nil, err
			}
			seq = append(seq, event)
			i += end + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSpec, s)
		}
		seq = append(seq, NewRuneEvent(r, ModNone))
		i += size
	}
	return seq, nil
}

// MustParseSequence parses a binding string and panics on error.
// Use only for known-valid literals in initialization code.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
