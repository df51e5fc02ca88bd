/* cmd/root.go */

package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds what the persistent pre-run resolves for the running command.
type app struct {
	cfgFile string
	cfg     *config.Config
	loader  *config.Loader
}

// NewRootCmd builds the pwgen command tree. Running it without a subcommand
// starts the interactive session.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   shared.AppName,
		Short: "Generate random passwords",
		Long: `pwgen generates random passwords from lowercase letters and, optionally,
uppercase letters, digits and punctuation. Every enabled character type
appears at least once. Passwords can be appended to a text file.

Run without a subcommand for an interactive session.`,
		Version:           shared.Version,
		Args:              validatedArgs(cobra.NoArgs),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              pwgen_cli.Wrap(a.runInteractive),
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: pwgen.yaml in ., $XDG_CONFIG_HOME/pwgen or /etc/pwgen)")
	root.PersistentFlags().String("log-level", "", "console log level: debug, info, warn or error")
	root.Flags().StringP("output", "o", shared.DefaultPasswordFile, "file that saved passwords are appended to")

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return pwgen_err.NewValidationError(err.Error(), "Run '"+c.CommandPath()+" --help' for usage")
	})

	root.AddCommand(
		a.newInteractiveCmd(),
		a.newGenerateCmd(),
		a.newVerifyCmd(),
		a.newConfigCmd(),
	)
	return root
}

// setup loads configuration, then replaces the fallback logger and starts
// telemetry according to it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.loader = config.NewLoader(a.cfgFile)
	if err := a.loader.BindFlags(cmd.Flags()); err != nil {
		return pwgen_err.NewInternalError("failed to bind flags", err)
	}

	cfg, err := a.loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		logCfg.Console = zapcore.AddSync(w)
	}
	log, err := logger.Initialize(logCfg)
	if err != nil {
		log.Warn("Continuing without log file", zap.Error(err))
	}
	if used := a.loader.ConfigFileUsed(); used != "" {
		log.Debug("Configuration loaded", zap.String("file", used))
	}

	if err := telemetry.Init(shared.AppName, cfg.Telemetry, filepath.Dir(logger.DefaultLogPath())); err != nil {
		log.Warn("Telemetry disabled", zap.Error(err))
	}
	return nil
}

// validatedArgs turns positional argument errors into validation errors.
func validatedArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return pwgen_err.NewValidationError(err.Error(), "Run '"+cmd.CommandPath()+" --help' for usage")
		}
		return nil
	}
}

// Run executes pwgen with args and returns the process exit code.
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)

	if shutdownErr := telemetry.Shutdown(ctx); shutdownErr != nil {
		logger.L().Warn("Failed to flush telemetry", zap.Error(shutdownErr))
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			_, _ = io.WriteString(errOut, "failed to flush logs: "+syncErr.Error()+"\n")
		}
	}()

	if err == nil {
		return 0
	}
	if pwgen_err.IsExpectedUserError(err) {
		logger.L().Warn("CLI completed with user error", zap.Error(err))
	} else {
		logger.L().Error("CLI execution error", zap.Error(err))
	}
	pwgen_err.Report(errOut, err)
	return pwgen_err.GetExitCode(err)
}

// Execute runs pwgen against the process arguments and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
