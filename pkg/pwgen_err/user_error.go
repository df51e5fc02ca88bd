// pkg/pwgen_err/user_error.go

package pwgen_err

import (
	"context"
	"fmt"
	"io"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// UserError marks a failure the user can fix by changing their input.
// It never carries a stack trace.
type UserError struct {
	cause error
}

func (e *UserError) Error() string { return e.cause.Error() }
func (e *UserError) Unwrap() error { return e.cause }

// NewExpectedError wraps err as a UserError. Nil stays nil.
func NewExpectedError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	otelzap.Ctx(ctx).Debug("Expected user error", zap.Error(err))
	return &UserError{cause: err}
}

// IsExpectedUserError reports whether err (or anything it wraps) is a UserError.
func IsExpectedUserError(err error) bool {
	if err == nil {
		return false
	}
	var ue *UserError
	if cerr.As(err, &ue) {
		return true
	}
	var ce *ClassifiedError
	if cerr.As(err, &ce) {
		return ce.Category == CategoryValidation
	}
	return false
}

// Report writes a one-line description of err for an interactive user.
// User errors get an "Error:" prefix, everything else is unexpected.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if IsExpectedUserError(err) {
		_, _ = fmt.Fprintf(w, "Error: %s\n", Summary(err))
		return
	}
	_, _ = fmt.Fprintf(w, "An unexpected error occurred: %s\n", Summary(err))
}

// Summary is the message of err without hints or remediation steps.
func Summary(err error) string {
	var ce *ClassifiedError
	if cerr.As(err, &ce) {
		if ce.Cause != nil && ce.Cause.Error() != ce.Message {
			return fmt.Sprintf("%s: %v", ce.Message, ce.Cause)
		}
		return ce.Message
	}
	return err.Error()
}
