// pkg/password/source.go

package password

import (
	"crypto/rand"
	"io"
	"math/big"
	mrand "math/rand/v2"

	"github.com/cockroachdb/errors"
)

// Source supplies uniform random indexes. IntN returns a value in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

type readerSource struct {
	r io.Reader
}

// CryptoSource returns a Source backed by crypto/rand. It is safe for
// concurrent use.
func CryptoSource() Source {
	return readerSource{r: rand.Reader}
}

// NewReaderSource draws uniform indexes from the bytes of r using
// crypto/rand.Int, which rejects biased samples.
func NewReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

func (s readerSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Newf("random index bound must be positive, got %d", n)
	}
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "read random source")
	}
	return int(v.Int64()), nil
}

// seededSource is deterministic and NOT suitable for real secrets.
type seededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns a reproducible Source seeded with seed. The same
// seed yields the same sequence. Not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} // #nosec G404
}

func (s *seededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Newf("random index bound must be positive, got %d", n)
	}
	return s.rng.IntN(n), nil
}
