package counter

import (
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Frequencies
	}{
		{
			name: "empty",
			want: Frequencies{},
		},
		{
			name: "repeated",
			text: "aaa",
			want: Frequencies{'a': 3},
		},
		{
			name: "hola mundo",
			text: "hola mundo",
			want: Frequencies{
				'h': 1, 'o': 2, 'l': 1, 'a': 1, ' ': 1,
				'm': 1, 'u': 1, 'n': 1, 'd': 1,
			},
		},
		{
			name: "case sensitive",
			text: "AaAa",
			want: Frequencies{'A': 2, 'a': 2},
		},
		{
			name: "whitespace and punctuation",
			text: "a, b\t!\n!",
			want: Frequencies{'a': 1, ',': 1, ' ': 1, 'b': 1, '\t': 1, '!': 2, '\n': 1},
		},
		{
			name: "multibyte",
			text: "\u00f1and\u00fa \u00f1u",
			want: Frequencies{'\u00f1': 2, 'a': 1, 'n': 1, 'd': 1, '\u00fa': 1, ' ': 1, 'u': 1},
		},
		{
			name: "no normalization",
			text: "\u00e9e\u0301",
			want: Frequencies{'\u00e9': 1, 'e': 1, '\u0301': 1},
		},
		{
			name: "invalid utf8",
			text: "a\xff\xfe",
			want: Frequencies{'a': 1, utf8.RuneError: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Letters(tt.text))
			assert.Equal(t, tt.want, LettersLookup(tt.text))
			assert.Equal(t, utf8.RuneCountInString(tt.text), Total(Letters(tt.text)))
		})
	}
}

func TestLetters_FreshResult(t *testing.T) {
	first := Letters("hola mundo")
	second := Letters("hola mundo")

	assert.Equal(t, first, second)

	first['z'] = 9
	assert.NotContains(t, second, 'z')
}

func TestLetters_Properties(t *testing.T) {
	strategiesAgree := func(s string) bool {
		return Equal(Letters(s), LettersLookup(s))
	}

	totalIsLength := func(s string) bool {
		return Total(Letters(s)) == utf8.RuneCountInString(s)
	}

	keysAreDistinctLetters := func(s string) bool {
		f := Letters(s)
		seen := make(map[rune]bool)
		for _, r := range s {
			seen[r] = true
			if f[r] < 1 {
				return false
			}
		}
		return len(seen) == len(f)
	}

	countsMatchPositions := func(s string) bool {
		f := LettersLookup(s)
		runes := []rune(s)
		for r, n := range f {
			positions := 0
			for i := range runes {
				if runes[i] == r {
					positions++
				}
			}
			if positions != n {
				return false
			}
		}
		return true
	}

	for name, prop := range map[string]func(string) bool{
		"strategies agree":          strategiesAgree,
		"total is length":           totalIsLength,
		"keys are distinct letters": keysAreDistinctLetters,
		"counts match positions":    countsMatchPositions,
	} {
		prop := prop
		t.Run(name, func(t *testing.T) {
			require.NoError(t, quick.Check(prop, nil))
		})
	}
}

func TestFrequencies_String(t *testing.T) {
	tests := []struct {
		name string
		f    Frequencies
		want string
	}{
		{
			name: "nil",
			want: "map[]",
		},
		{
			name: "sorted by code point",
			f:    Letters("hola mundo"),
			want: "map[' ':1 'a':1 'd':1 'h':1 'l':1 'm':1 'n':1 'o':2 'u':1]",
		},
		{
			name: "escaped",
			f:    Frequencies{'\n': 2, '\'': 1},
			want: `map['\n':2 '\'':1]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.String())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("default")
	require.NoError(t, err)
	assert.Equal(t, DefaultOnMiss, s)

	s, err = ParseStrategy("lookup")
	require.NoError(t, err)
	assert.Equal(t, ExplicitLookup, s)

	_, err = ParseStrategy("Default")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.EqualError(t, err, `unknown counting strategy: "Default"`)
}

func TestStrategy_Set(t *testing.T) {
	var s Strategy

	require.NoError(t, s.Set("lookup"))
	assert.Equal(t, ExplicitLookup, s)
	assert.Equal(t, "lookup", s.String())
	assert.Equal(t, "strategy", s.Type())

	assert.ErrorIs(t, s.Set("defaultdict"), ErrUnknownStrategy)
	assert.Equal(t, ExplicitLookup, s, "failed Set must not change the value")
}

func TestStrategy_Letters(t *testing.T) {
	want := Frequencies{'a': 2, 'b': 1}

	assert.Equal(t, want, DefaultOnMiss.Letters("aba"))
	assert.Equal(t, want, ExplicitLookup.Letters("aba"))
	assert.Equal(t, "Strategy(7)", Strategy(7).String())
	assert.PanicsWithValue(t, "unknown strategy Strategy(7)", func() {
		_ = Strategy(7).Letters("aba")
	})
}
