// pkg/cli/cli.go
//
// Flag helpers shared by the pwgen commands.
package cli

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// KeyForFlag maps a flag name to its config key: --bcrypt-cost is bcrypt_cost.
func KeyForFlag(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// BindFlagsToViper binds every flag in fs to the key KeyForFlag gives it.
// All binding failures are returned together.
func BindFlagsToViper(fs *pflag.FlagSet, v *viper.Viper) error {
	if fs == nil {
		return nil
	}
	var result error
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(KeyForFlag(f.Name), f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// GetBool returns the flag value, or false if the flag is not defined.
func GetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// GetString returns the flag value, or "" if the flag is not defined.
func GetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// GetUint64 returns the flag value, or 0 if the flag is not defined.
func GetUint64(cmd *cobra.Command, name string) uint64 {
	val, err := cmd.Flags().GetUint64(name)
	if err != nil {
		return 0
	}
	return val
}
