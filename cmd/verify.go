/* cmd/verify.go */

package cmd

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/fileops"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against a bcrypt hash or count a password file",
		Example: `  pwgen verify --hash '$2a$10$...'
  pwgen verify --file passwords.txt`,
		Args: validatedArgs(cobra.NoArgs),
		RunE: pwgen_cli.Wrap(a.runVerify),
	}
	cmd.Flags().String("hash", "", "bcrypt hash to check a password against (prompted without echo)")
	cmd.Flags().String("file", "", "password file to count entries in")
	return cmd
}

func (a *app) runVerify(rc *pwgen_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
	hash := cli.GetString(cmd, "hash")
	file := cli.GetString(cmd, "file")
	if hash == "" && file == "" {
		return pwgen_err.NewValidationError("nothing to verify",
			"Pass --hash to check a password",
			"Pass --file to count the entries of a password file")
	}
	out := cmd.OutOrStdout()

	if file != "" {
		lines, err := fileops.NewFileSystemOperations(rc.Log).ReadLines(rc.Ctx, file)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s: %d entries\n", file, len(lines))
	}

	if hash == "" {
		return nil
	}
	cost, err := crypto.HashCost(hash)
	if err != nil {
		return pwgen_err.NewValidationError("--hash is not a bcrypt hash: " + err.Error())
	}
	rc.Log.Debug("Verifying against bcrypt hash", zap.Int("cost", cost))

	pw, err := interaction.PromptSecret(rc.Ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
	if cerr.Is(err, interaction.ErrNoInput) {
		return pwgen_err.NewUserCancelledError("password entry")
	}
	if err != nil {
		return err
	}

	// The hash parsed above, so a failed comparison is a mismatch.
	if !crypto.ComparePasswordLogging(hash, pw, rc.Log) {
		rc.Attributes["match"] = "false"
		return cerr.Mark(pwgen_err.NewValidationError("password does not match hash"), crypto.ErrMismatch)
	}
	rc.Attributes["match"] = "true"
	_, _ = fmt.Fprintln(out, "Password matches hash")
	return nil
}
