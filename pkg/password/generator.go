// pkg/password/generator.go

package password

import (
	"github.com/cockroachdb/errors"
)

// MinLength is the shortest password that still has one seed slot per class.
const MinLength = 4

// Options selects the character classes of a password.
type Options struct {
	Length           int
	UseUppercase     bool
	UseDigits        bool
	UseSpecial       bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns a 12 character password using every class.
func DefaultOptions() Options {
	return Options{
		Length:       12,
		UseUppercase: true,
		UseDigits:    true,
		UseSpecial:   true,
	}
}

// Validate checks the length constraint only. Flags are unconstrained.
func (o Options) Validate() error {
	if o.Length < MinLength {
		return invalidLength(o.Length)
	}
	return nil
}

// Generator builds passwords from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src falls back to
// CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource()
	}
	return &Generator{src: src}
}

// Generate creates a password with the default crypto source.
func Generate(opts Options) (string, error) {
	return NewGenerator(nil).Generate(opts)
}

// Generate returns a password of exactly opts.Length characters. One
// character is seeded per class; a class that is disabled (or empty after
// filtering) seeds from lowercase instead. The rest is drawn uniformly from
// the whole alphabet and the result is shuffled.
func (g *Generator) Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	alphabet := Alphabet(opts)
	if alphabet == "" {
		return "", emptyAlphabet()
	}
	lower := Charset(Lowercase, opts)

	pw := make([]byte, 0, opts.Length)
	for _, c := range Classes {
		pool := Charset(c, opts)
		if pool == "" {
			pool = lower
		}
		ch, err := g.pick(pool)
		if err != nil {
			return "", errors.Wrapf(err, "seed %s character", c)
		}
		pw = append(pw, ch)
	}

	for len(pw) < opts.Length {
		ch, err := g.pick(alphabet)
		if err != nil {
			return "", errors.Wrap(err, "fill password")
		}
		pw = append(pw, ch)
	}

	if err := g.shuffle(pw); err != nil {
		return "", errors.Wrap(err, "shuffle password")
	}
	return string(pw), nil
}

// pick returns one uniformly chosen byte of charset. Every charset is ASCII.
func (g *Generator) pick(charset string) (byte, error) {
	i, err := g.src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle is a Fisher-Yates permutation driven by the generator's source.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
