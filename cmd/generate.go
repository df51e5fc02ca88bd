/* cmd/generate.go */

package cmd

import (
	"fmt"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/fileops"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one or more passwords",
		Long: `Generate prints passwords to stdout, one per line. With --hash each line
is followed by a tab and the bcrypt hash of the password.

Defaults come from the config file and PWGEN_* environment variables.`,
		Example: `  pwgen generate -l 20
  pwgen generate --special=false -x -c 5
  pwgen generate --save -o vault.txt --hash`,
		Args: validatedArgs(cobra.NoArgs),
		RunE: pwgen_cli.Wrap(a.runGenerate),
	}

	def := config.Defaults()
	f := cmd.Flags()
	f.IntP("length", "l", def.Length, "password length (minimum 4)")
	f.Bool("uppercase", def.Uppercase, "include uppercase letters")
	f.Bool("digits", def.Digits, "include digits")
	f.Bool("special", def.Special, "include punctuation")
	f.BoolP("exclude-ambiguous", "x", def.ExcludeAmbiguous, "leave out 0, O, 1 and l")
	f.IntP("count", "c", def.Count, "number of passwords")
	f.BoolP("save", "s", false, "append each password to the output file")
	f.StringP("output", "o", def.Output, "file that saved passwords are appended to")
	f.Bool("hash", def.Hash, "print a bcrypt hash after each password")
	f.Int("bcrypt-cost", def.BcryptCost, "bcrypt cost for --hash (4 to 31)")
	f.Uint64("seed", 0, "seed a deterministic generator (testing only, output is predictable)")
	return cmd
}

func (a *app) runGenerate(rc *pwgen_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
	cfg := a.cfg
	opts := cfg.Options()

	src := password.CryptoSource()
	if seed := cli.GetUint64(cmd, "seed"); seed != 0 {
		rc.Log.Warn("Using a seeded generator, passwords are predictable", zap.Uint64("seed", seed))
		src = password.NewSeededSource(seed)
	}
	gen := password.NewGenerator(src)
	save := cli.GetBool(cmd, "save")

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		rc.Log.Warn("Metrics unavailable", zap.Error(err))
	}
	seeded := attribute.Bool("seeded", cli.GetUint64(cmd, "seed") != 0)

	rc.Attributes["count"] = strconv.Itoa(cfg.Count)
	rc.Attributes["length"] = strconv.Itoa(opts.Length)
	rc.Log.Debug("Generating passwords",
		zap.Int("count", cfg.Count),
		zap.Int("length", opts.Length),
		zap.Int("alphabet", len(password.Alphabet(opts))),
		zap.Bool("save", save),
		zap.Bool("hash", cfg.Hash))

	out := cmd.OutOrStdout()
	for i := 0; i < cfg.Count; i++ {
		pw, err := gen.Generate(opts)
		if err != nil {
			if cerr.Is(err, password.ErrInvalidLength) || cerr.Is(err, password.ErrEmptyAlphabet) {
				metrics.RecordFailure(rc.Ctx, "user")
				return pwgen_err.NewExpectedError(rc.Ctx, err)
			}
			metrics.RecordFailure(rc.Ctx, "system")
			return cerr.Wrap(err, "generate password")
		}
		metrics.RecordGenerated(rc.Ctx, len(pw), seeded)

		line := pw
		if cfg.Hash {
			hash, err := crypto.HashPasswordWithCost(pw, cfg.BcryptCost)
			if err != nil {
				return err
			}
			line += "\t" + hash
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return cerr.Wrap(err, "write password")
		}

		if save {
			if err := fileops.SavePassword(rc.Ctx, pw, cfg.Output); err != nil {
				return err
			}
		}
		rc.Log.Debug("Password generated",
			zap.Int("index", i),
			zap.String("password", crypto.Redact(pw)))
	}

	if save {
		rc.Log.Info("Passwords saved", zap.String("file", cfg.Output), zap.Int("count", cfg.Count))
	}
	return nil
}
