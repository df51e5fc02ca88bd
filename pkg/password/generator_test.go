// pkg/password/generator_test.go

package password

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allFlagCombos enumerates the 16 combinations of the four boolean options.
func allFlagCombos(length int) []Options {
	var out []Options
	for mask := 0; mask < 16; mask++ {
		out = append(out, Options{
			Length:           length,
			UseUppercase:     mask&1 != 0,
			UseDigits:        mask&2 != 0,
			UseSpecial:       mask&4 != 0,
			ExcludeAmbiguous: mask&8 != 0,
		})
	}
	return out
}

func onlyFrom(t *testing.T, pw, alphabet string) {
	t.Helper()
	for _, r := range pw {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("password %q has %q outside alphabet %q", pw, r, alphabet)
		}
	}
}

func TestGenerate_LengthMatches(t *testing.T) {
	gen := NewGenerator(NewSeededSource(1))
	for _, length := range []int{4, 5, 12, 64, 257} {
		for _, opts := range allFlagCombos(length) {
			pw, err := gen.Generate(opts)
			require.NoError(t, err, "opts=%+v", opts)
			assert.Len(t, pw, length)
			onlyFrom(t, pw, Alphabet(opts))
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, length := range []int{3, 2, 1, 0, -1, -100} {
		for _, opts := range allFlagCombos(length) {
			pw, err := Generate(opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLength), "length %d: %v", length, err)
			assert.Empty(t, pw)
			assert.Contains(t, err.Error(), "at least 4 characters to include all character types")
		}
	}
}

func TestGenerate_AllClassesPresent(t *testing.T) {
	opts := Options{Length: 12, UseUppercase: true, UseDigits: true, UseSpecial: true}
	alphabet := LowercaseChars + UppercaseChars + DigitChars + SpecialChars
	assert.Equal(t, alphabet, Alphabet(opts))

	for i := 0; i < 500; i++ {
		pw, err := Generate(opts)
		require.NoError(t, err)
		require.Len(t, pw, 12)
		onlyFrom(t, pw, alphabet)

		counts := Composition(pw)
		for _, c := range Classes {
			assert.GreaterOrEqual(t, counts[c], 1, "class %s missing from %q", c, pw)
		}
	}
}

func TestGenerate_MinimumLengthHasEveryClass(t *testing.T) {
	gen := NewGenerator(NewSeededSource(99))
	opts := Options{Length: 4, UseUppercase: true, UseDigits: true, UseSpecial: true}
	for i := 0; i < 200; i++ {
		pw, err := gen.Generate(opts)
		require.NoError(t, err)
		counts := Composition(pw)
		for _, c := range Classes {
			assert.Equal(t, 1, counts[c], "password %q", pw)
		}
	}
}

func TestGenerate_ExcludeAmbiguous(t *testing.T) {
	gen := NewGenerator(NewSeededSource(7))
	for _, opts := range allFlagCombos(40) {
		if !opts.ExcludeAmbiguous {
			continue
		}
		for i := 0; i < 50; i++ {
			pw, err := gen.Generate(opts)
			require.NoError(t, err)
			assert.False(t, strings.ContainsAny(pw, AmbiguousChars), "password %q", pw)
		}
	}
}

func TestGenerate_LowercaseOnlyWithoutAmbiguous(t *testing.T) {
	opts := Options{Length: 30, ExcludeAmbiguous: true}
	lower := strings.ReplaceAll(LowercaseChars, "l", "")
	assert.Equal(t, lower, Alphabet(opts))

	for i := 0; i < 100; i++ {
		pw, err := Generate(opts)
		require.NoError(t, err)
		require.Len(t, pw, 30)
		onlyFrom(t, pw, lower)
	}
}

func TestGenerate_DisabledClassesNeverAppear(t *testing.T) {
	gen := NewGenerator(NewSeededSource(3))
	opts := Options{Length: 50, UseDigits: true}
	for i := 0; i < 100; i++ {
		pw, err := gen.Generate(opts)
		require.NoError(t, err)
		counts := Composition(pw)
		assert.Zero(t, counts[Uppercase])
		assert.Zero(t, counts[Special])
		assert.GreaterOrEqual(t, counts[Digit], 1)
		assert.GreaterOrEqual(t, counts[Lowercase], 1)
	}
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	opts := DefaultOptions()
	a, err := NewGenerator(NewSeededSource(42)).Generate(opts)
	require.NoError(t, err)
	b, err := NewGenerator(NewSeededSource(42)).Generate(opts)
	require.NoError(t, err)
	c, err := NewGenerator(NewSeededSource(43)).Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Uniqueness(t *testing.T) {
	opts := Options{Length: 32, UseUppercase: true, UseDigits: true, UseSpecial: true}
	a, err := Generate(opts)
	require.NoError(t, err)
	b, err := Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// failingSource fails after ok successful draws.
type failingSource struct {
	ok    int
	calls int
}

func (f *failingSource) IntN(n int) (int, error) {
	f.calls++
	if f.calls > f.ok {
		return 0, errors.New("entropy exhausted")
	}
	return 0, nil
}

func TestGenerate_SourceFailure(t *testing.T) {
	tests := []struct {
		name string
		ok   int
		want string
	}{
		{name: "seed", ok: 0, want: "seed lowercase character"},
		{name: "fill", ok: 4, want: "fill password"},
		{name: "shuffle", ok: 12, want: "shuffle password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := NewGenerator(&failingSource{ok: tt.ok}).Generate(DefaultOptions())
			require.Error(t, err)
			assert.Empty(t, pw)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "entropy exhausted")
		})
	}
}

func TestReaderSource_ReadError(t *testing.T) {
	src := NewReaderSource(strings.NewReader(""))
	_, err := src.IntN(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read random source")
}

func TestSources_RejectNonPositiveBound(t *testing.T) {
	for _, src := range []Source{CryptoSource(), NewSeededSource(1)} {
		_, err := src.IntN(0)
		assert.Error(t, err)
	}
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.NoError(t, Options{Length: MinLength}.Validate())
	err := Options{Length: MinLength - 1}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidLength))
}
