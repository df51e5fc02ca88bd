// pkg/interaction/session.go

package interaction

import (
	"context"
	"fmt"
	"io"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/fileops"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/charmbracelet/lipgloss"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	PromptLength           = "Enter the desired length of the password (minimum 4): "
	PromptUppercase        = "Include uppercase letters? (yes/no): "
	PromptDigits           = "Include digits? (yes/no): "
	PromptSpecial          = "Include special characters? (yes/no): "
	PromptExcludeAmbiguous = "Exclude ambiguous characters (0, O, 1, l)? (yes/no): "
	PromptSave             = "Do you want to save the password to a file? (yes/no): "
)

var passwordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// Session is one interactive generate-and-maybe-save run.
type Session struct {
	In  io.Reader
	Out io.Writer

	// Output is the file a saved password is appended to.
	Output    string
	Generator *password.Generator
	// Styled highlights the password with lipgloss. Set only for terminals.
	Styled bool
}

// Run asks for options, prints a password and offers to save it. Any error
// ends the session and is reported to Out before being returned.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if err != nil {
		pwgen_err.Report(s.Out, err)
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	logger := otelzap.Ctx(ctx)
	p := NewPrompter(s.In, s.Out)

	opts, err := s.askOptions(ctx, p)
	if err != nil {
		return err
	}
	logger.Debug("Options collected",
		zap.Int("length", opts.Length),
		zap.Bool("uppercase", opts.UseUppercase),
		zap.Bool("digits", opts.UseDigits),
		zap.Bool("special", opts.UseSpecial),
		zap.Bool("exclude_ambiguous", opts.ExcludeAmbiguous))

	gen := s.Generator
	if gen == nil {
		gen = password.NewGenerator(nil)
	}
	pw, err := gen.Generate(opts)
	if err != nil {
		if cerr.Is(err, password.ErrInvalidLength) || cerr.Is(err, password.ErrEmptyAlphabet) {
			return pwgen_err.NewExpectedError(ctx, err)
		}
		return err
	}
	logger.Info("Password generated",
		zap.String("password", crypto.Redact(pw)),
		zap.Any("composition", compositionFields(pw)))

	shown := pw
	if s.Styled {
		shown = passwordStyle.Render(pw)
	}
	if _, err := fmt.Fprintf(s.Out, "Generated secure password: %s\n", shown); err != nil {
		return cerr.Wrap(err, "write password")
	}

	save, err := p.PromptYesNo(ctx, PromptSave)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	if err := fileops.SavePassword(ctx, pw, s.Output); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.Out, "Password saved to %s\n", s.outputName())
	return nil
}

func (s *Session) askOptions(ctx context.Context, p *Prompter) (password.Options, error) {
	var opts password.Options
	var err error

	if opts.Length, err = p.PromptInt(ctx, PromptLength, "length"); err != nil {
		return opts, err
	}
	if err := opts.Validate(); err != nil {
		return opts, pwgen_err.NewExpectedError(ctx, err)
	}
	for _, q := range []struct {
		label string
		dst   *bool
	}{
		{PromptUppercase, &opts.UseUppercase},
		{PromptDigits, &opts.UseDigits},
		{PromptSpecial, &opts.UseSpecial},
		{PromptExcludeAmbiguous, &opts.ExcludeAmbiguous},
	} {
		if *q.dst, err = p.PromptYesNo(ctx, q.label); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func (s *Session) outputName() string {
	if s.Output == "" {
		return shared.DefaultPasswordFile
	}
	return s.Output
}

// compositionFields keys the class counts by name for logging.
func compositionFields(pw string) map[string]int {
	out := make(map[string]int, len(password.Classes))
	for class, n := range password.Composition(pw) {
		out[class.String()] = n
	}
	return out
}
