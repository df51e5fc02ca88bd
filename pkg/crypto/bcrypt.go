// pkg/crypto/bcrypt.go

package crypto

import (
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = bcrypt.DefaultCost
)

// ErrMismatch is returned by ComparePassword when the password does not
// match the hash.
var ErrMismatch = cerr.New("password does not match hash")

// HashPasswordWithCost hashes a password with a custom cost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if cost < MinCost || cost > MaxCost {
		return "", cerr.Newf("bcrypt: invalid cost %d (want %d to %d)", cost, MinCost, MaxCost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", cerr.Wrap(err, "bcrypt hash failed")
	}
	return string(hash), nil
}

// ComparePassword checks if password matches the bcrypt hash. A mismatch is
// ErrMismatch; a malformed hash is any other error.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case cerr.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return cerr.Wrap(err, "invalid bcrypt hash")
	}
}

// ComparePasswordLogging is ComparePassword reduced to a bool, logging the
// reason for a failed comparison.
func ComparePasswordLogging(hash, password string, logger *zap.Logger) bool {
	err := ComparePassword(hash, password)
	if err != nil && logger != nil {
		logger.Warn("bcrypt password mismatch", zap.Error(err))
	}
	return err == nil
}

// HashCost reports the cost a bcrypt hash was made with.
func HashCost(hash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, cerr.Wrap(err, "invalid bcrypt hash")
	}
	return cost, nil
}
