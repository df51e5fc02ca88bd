package password

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestFilterAmbiguous(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: DigitChars, want: "23456789"},
		{in: UppercaseChars, want: "ABCDEFGHIJKLMNPQRSTUVWXYZ"},
		{in: LowercaseChars, want: "abcdefghijkmnopqrstuvwxyz"},
		{in: SpecialChars, want: SpecialChars},
		{in: "0O1l", want: ""},
		{in: "a0b1c", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once := FilterAmbiguous(tt.in)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, FilterAmbiguous(once), "filtering must be idempotent")
		})
	}
}

func TestCharset(t *testing.T) {
	none := Options{}
	assert.Equal(t, LowercaseChars, Charset(Lowercase, none))
	assert.Empty(t, Charset(Uppercase, none))
	assert.Empty(t, Charset(Digit, none))
	assert.Empty(t, Charset(Special, none))

	all := Options{UseUppercase: true, UseDigits: true, UseSpecial: true, ExcludeAmbiguous: true}
	for _, c := range Classes {
		assert.NotEmpty(t, Charset(c, all), "class %s", c)
		assert.False(t, strings.ContainsAny(Charset(c, all), AmbiguousChars))
	}
}

func TestAlphabet_FilteringIsIdempotent(t *testing.T) {
	opts := Options{UseUppercase: true, UseDigits: true, UseSpecial: true, ExcludeAmbiguous: true}
	alphabet := Alphabet(opts)
	assert.Equal(t, alphabet, FilterAmbiguous(alphabet))
	assert.Len(t, alphabet, 26+26+10+32-4)
}

func TestClassesAreDisjoint(t *testing.T) {
	assert.Len(t, SpecialChars, 32)
	seen := map[rune]Class{}
	for _, c := range Classes {
		for _, r := range c.chars() {
			prev, dup := seen[r]
			assert.False(t, dup, "%q in both %s and %s", r, prev, c)
			seen[r] = c
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
		ok   bool
	}{
		{r: 'q', want: Lowercase, ok: true},
		{r: 'Q', want: Uppercase, ok: true},
		{r: '7', want: Digit, ok: true},
		{r: '~', want: Special, ok: true},
		{r: '\\', want: Special, ok: true},
		{r: ' ', ok: false},
		{r: 'é', ok: false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.r)
		assert.Equal(t, tt.ok, ok, "rune %q", tt.r)
		if tt.ok {
			assert.Equal(t, tt.want, got, "rune %q", tt.r)
		}
	}
}

func TestComposition(t *testing.T) {
	counts := Composition("aB3$bb")
	assert.Equal(t, 3, counts[Lowercase])
	assert.Equal(t, 1, counts[Uppercase])
	assert.Equal(t, 1, counts[Digit])
	assert.Equal(t, 1, counts[Special])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 6, total)
}

func TestEmptyAlphabetError(t *testing.T) {
	err := emptyAlphabet()
	assert.True(t, errors.Is(err, ErrEmptyAlphabet))
	assert.False(t, errors.Is(err, ErrInvalidLength))
	assert.Contains(t, err.Error(), "no characters available")
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "lowercase", Lowercase.String())
	assert.Equal(t, "special", Special.String())
	assert.Equal(t, "unknown", Class(9).String())
}
