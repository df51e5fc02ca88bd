// pkg/shared/constants.go

package shared

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

const (
	AppName = "pwgen"

	// EnvPrefix is prepended to every environment override, e.g. PWGEN_LENGTH.
	EnvPrefix = "PWGEN"

	// DefaultPasswordFile receives saved passwords when no destination is given.
	DefaultPasswordFile = "passwords.txt"

	DefaultConfigName = "pwgen"
	DefaultConfigType = "yaml"

	// PasswordFilePerm keeps saved passwords readable by the owner only.
	PasswordFilePerm = 0o600
	LogFilePerm      = 0o600
	LogDirPerm       = 0o700
)
