// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	YesShort = "y"
	YesLong  = "yes"
	NoShort  = "n"
	NoLong   = "no"
)

// ErrNoInput is returned when the input stream ends before an answer.
var ErrNoInput = cerr.New("no input received")

// Prompter writes labels to w and reads answers, one line each, from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Prompter{r: br, w: w}
}

// ReadLine prints label verbatim and returns the trimmed answer. A final
// line without a newline is accepted; an empty stream is ErrNoInput.
func (p *Prompter) ReadLine(ctx context.Context, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	if _, err := fmt.Fprint(p.w, label); err != nil {
		return "", cerr.Wrap(err, "write prompt")
	}

	text, err := p.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			logger.Error("Failed to read user input", zap.Error(err))
			return "", cerr.Wrap(err, "read input")
		}
		if text == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimSpace(text), nil
}

// PromptYesNo asks a yes/no question. Only "y" and "yes" (any case) are true;
// any other answer is false.
func (p *Prompter) PromptYesNo(ctx context.Context, label string) (bool, error) {
	input, err := p.ReadLine(ctx, label)
	if err != nil {
		return false, err
	}
	answer, known := NormalizeYesNoInput(input)
	if !known {
		otelzap.Ctx(ctx).Debug("Unrecognised answer treated as no", zap.String("input", input))
	}
	return answer, nil
}

// PromptInt asks for a whole number. A non-numeric answer is an expected
// user error.
func (p *Prompter) PromptInt(ctx context.Context, label, field string) (int, error) {
	input, err := p.ReadLine(ctx, label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, pwgen_err.NewExpectedError(ctx, pwgen_err.NewValidationError(
			fmt.Sprintf("%s must be a whole number, got %q", field, input),
		))
	}
	return n, nil
}

// NormalizeYesNoInput returns true if the provided input string is an affirmative response like "y" or "yes".
// It trims whitespace and lowercases input before comparison.
func NormalizeYesNoInput(input string) (bool, bool) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == YesShort || input == YesLong {
		return true, true
	}
	if input == NoShort || input == NoLong {
		return false, true
	}
	return false, false // unknown
}
