// pkg/password/errors.go

package password

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLength marks a requested length below MinLength.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrEmptyAlphabet marks options that leave no character to draw from.
	ErrEmptyAlphabet = errors.New("empty password alphabet")
)

func invalidLength(length int) error {
	err := errors.Newf("password length should be at least %d characters to include all character types, got %d", MinLength, length)
	err = errors.WithHintf(err, "choose a length of %d or more", MinLength)
	return errors.Mark(err, ErrInvalidLength)
}

func emptyAlphabet() error {
	err := errors.New("no characters available to generate password, adjust your settings")
	err = errors.WithHint(err, "enable another character class or stop excluding ambiguous characters")
	return errors.Mark(err, ErrEmptyAlphabet)
}
