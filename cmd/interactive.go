/* cmd/interactive.go */

package cmd

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Ask for options, generate one password and offer to save it",
		Args:  validatedArgs(cobra.NoArgs),
		RunE:  pwgen_cli.Wrap(a.runInteractive),
	}
	cmd.Flags().StringP("output", "o", shared.DefaultPasswordFile, "file that saved passwords are appended to")
	return cmd
}

// runInteractive reports session errors to the user itself, so the command
// always succeeds once the session has started.
func (a *app) runInteractive(rc *pwgen_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	f, isFile := out.(*os.File)

	rc.Attributes["output"] = a.cfg.Output

	session := &interaction.Session{
		In:     cmd.InOrStdin(),
		Out:    out,
		Output: a.cfg.Output,
		Styled: isFile && interaction.IsTTY(f),
	}
	if err := session.Run(rc.Ctx); err != nil {
		rc.Attributes["session_error"] = pwgen_io.ClassifyError(err)
		rc.Log.Info("Interactive session ended early", zap.Error(err))
		return nil
	}
	return nil
}
