// pkg/pwgen_cli/wrap.go

package pwgen_cli

import (
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is a cobra RunE body that receives a RuntimeContext.
type RunFunc func(rc *pwgen_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap ensures panic recovery, telemetry and logging around fn.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := pwgen_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		pwgen_io.LogRuntimeExecutionContext(rc)
		rc.Log.Debug("Running command",
			zap.String("path", cmd.CommandPath()),
			zap.Int("args", len(args)))

		err = fn(rc, cmd, args)
		if err != nil && !pwgen_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
