// pkg/config/loader.go

package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// DefaultEnvFile is loaded into the environment before configuration is read.
const DefaultEnvFile = ".env"

// Loader layers flags over PWGEN_* environment over the config file over
// Defaults.
type Loader struct {
	v *viper.Viper

	// ConfigFile, when set, is the only file read and must exist.
	ConfigFile string
	// EnvFile is a dotenv file whose variables are exported if not already set.
	EnvFile string
}

// NewLoader prepares a viper instance with the search path and env binding.
func NewLoader(cfgFile string) *Loader {
	v := viper.New()

	for key, val := range defaultValues() {
		v.SetDefault(key, val)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(shared.DefaultConfigName)
		v.SetConfigType(shared.DefaultConfigType)
		for _, dir := range SearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(shared.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, ConfigFile: cfgFile, EnvFile: DefaultEnvFile}
}

func defaultValues() map[string]any {
	def := Defaults()
	return map[string]any{
		"length":            def.Length,
		"uppercase":         def.Uppercase,
		"digits":            def.Digits,
		"special":           def.Special,
		"exclude_ambiguous": def.ExcludeAmbiguous,
		"count":             def.Count,
		"output":            def.Output,
		"hash":              def.Hash,
		"bcrypt_cost":       def.BcryptCost,
		"log_level":         def.LogLevel,
		"log_file":          def.LogFile,
		"telemetry":         def.Telemetry,
	}
}

// SearchPaths lists the directories searched for pwgen.yaml, highest
// priority first.
func SearchPaths() []string {
	return []string{
		".",
		xdg.ConfigDir(shared.AppName),
		"/etc/" + shared.AppName,
	}
}

// BindFlags binds the flags in fs that name a config key and share its type,
// so that a flag set on the command line wins over every other source.
// Other flags, such as verify's string --hash, are left alone.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	defaults := defaultValues()
	bindable := pflag.NewFlagSet(fs.Name(), pflag.ContinueOnError)
	fs.VisitAll(func(f *pflag.Flag) {
		def, ok := defaults[cli.KeyForFlag(f.Name)]
		if ok && flagType(def) == f.Value.Type() {
			bindable.AddFlag(f)
		}
	})
	return cli.BindFlagsToViper(bindable, l.v)
}

func flagType(v any) string {
	switch v.(type) {
	case bool:
		return "bool"
	case int:
		return "int"
	default:
		return "string"
	}
}

// Load reads the dotenv file and the config file, then unmarshals and
// validates the merged result.
func (l *Loader) Load(ctx context.Context) (*Config, error) {
	log := otelzap.Ctx(ctx)

	if err := loadEnvFile(l.EnvFile); err != nil {
		return nil, err
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, cerr.Wrapf(err, "read config %s", l.configName())
		}
		log.Debug("No config file found, using defaults and environment")
	} else {
		log.Debug("Using config file", zap.String("path", l.v.ConfigFileUsed()))
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, cerr.Wrap(err, "decode config")
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileUsed is the file Load read, or "" when none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) configName() string {
	if l.ConfigFile != "" {
		return l.ConfigFile
	}
	return shared.DefaultConfigName + "." + shared.DefaultConfigType
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return cerr.Wrapf(err, "load %s", path)
	}
	return nil
}
