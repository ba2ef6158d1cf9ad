package counter

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequencies maps each letter (a Unicode code point) of a text
// to the number of times it occurs there.
type Frequencies map[rune]int

// String renders f in fmt's map style, sorted by code point,
// with each letter quoted: map[' ':1 'a':1 'o':2].
func (f Frequencies) String() string {
	letters := maps.Keys(f)
	slices.Sort(letters)

	var b strings.Builder
	b.WriteString("map[")
	for i, r := range letters {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%q:%d", r, f[r])
	}
	b.WriteByte(']')

	return b.String()
}

// Letters counts each code point of text. Invalid UTF-8 bytes are counted
// as utf8.RuneError, one per byte, so Total(Letters(s)) always equals
// utf8.RuneCountInString(s).
func Letters(text string) Frequencies {
	f := make(Frequencies)

	for _, r := range text {
		f[r]++
	}

	return f
}

// LettersLookup is Letters using an explicit presence check for each letter.
func LettersLookup(text string) Frequencies {
	f := make(Frequencies)

	for _, r := range text {
		n, ok := f[r]
		if !ok {
			n = 0
		}
		f[r] = n + 1
	}

	return f
}

// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("unknown counting strategy")

// Strategy selects how a tally is updated for each letter.
// The zero value is DefaultOnMiss.
type Strategy int

const (
	// DefaultOnMiss increments the entry directly; a missing key reads as 0.
	DefaultOnMiss Strategy = iota
	// ExplicitLookup checks whether the key is present before storing count+1.
	ExplicitLookup
)

var strategyNames = map[Strategy]string{
	DefaultOnMiss:  "default",
	ExplicitLookup: "lookup",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the Strategy called name ("default" or "lookup").
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Set implements the flag value interface used by flag and pflag.
func (s *Strategy) Set(name string) error {
	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type returns the flag type name shown in usage text.
func (s *Strategy) Type() string {
	return "strategy"
}

// Letters counts the code points of text using s.
func (s Strategy) Letters(text string) Frequencies {
	switch s {
	case DefaultOnMiss:
		return Letters(text)
	case ExplicitLookup:
		return LettersLookup(text)
	default:
		panic("unknown strategy " + s.String())
	}
}
