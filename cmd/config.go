/* cmd/config.go */

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the pwgen configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  validatedArgs(cobra.NoArgs),
		RunE:  pwgen_cli.Wrap(a.runConfigShow),
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Long: fmt.Sprintf(`Init writes the default settings to path, or to %s
when no path is given. An existing file is kept unless --force is set.`, DefaultConfigPath()),
		Args: validatedArgs(cobra.MaximumNArgs(1)),
		RunE: pwgen_cli.Wrap(a.runConfigInit),
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	return cmd
}

// DefaultConfigPath is where `config init` writes without an argument.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigDir(shared.AppName), shared.DefaultConfigName+"."+shared.DefaultConfigType)
}

func (a *app) runConfigShow(rc *pwgen_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
	data, err := a.cfg.Marshal()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if used := a.loader.ConfigFileUsed(); used != "" {
		_, _ = fmt.Fprintf(out, "# file: %s\n", used)
	}
	_, err = out.Write(data)
	return err
}

func (a *app) runConfigInit(rc *pwgen_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	path := DefaultConfigPath()
	if len(args) == 1 {
		path = args[0]
	}
	rc.Attributes["path"] = path

	if err := config.Write(rc.Ctx, path, config.Defaults(), cli.GetBool(cmd, "force")); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}
