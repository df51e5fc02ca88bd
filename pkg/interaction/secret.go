// pkg/interaction/secret.go

package interaction

import (
	"context"
	"fmt"
	"io"
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// PromptSecret reads a value without echo when in is a terminal. Piped input
// is read as a plain line so scripts can feed it.
func PromptSecret(ctx context.Context, in io.Reader, w io.Writer, label string) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !IsTTY(f) {
		otelzap.Ctx(ctx).Debug("Secret input is not a terminal, reading a line")
		return NewPrompter(in, w).ReadLine(ctx, label)
	}

	if _, err := fmt.Fprint(w, label); err != nil {
		return "", cerr.Wrap(err, "write prompt")
	}
	secret, err := term.ReadPassword(int(f.Fd()))
	_, _ = fmt.Fprintln(w)
	if cerr.Is(err, io.EOF) && len(secret) == 0 {
		return "", ErrNoInput
	}
	if err != nil {
		otelzap.Ctx(ctx).Error("Failed to read secret input", zap.Error(err))
		return "", cerr.Wrap(err, "read secret")
	}
	return string(secret), nil
}
