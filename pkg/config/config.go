// pkg/config/config.go

package config

import (
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the effective pwgen configuration after defaults, config file,
// environment and flags have been layered.
type Config struct {
	Length           int    `mapstructure:"length" yaml:"length"`
	Uppercase        bool   `mapstructure:"uppercase" yaml:"uppercase"`
	Digits           bool   `mapstructure:"digits" yaml:"digits"`
	Special          bool   `mapstructure:"special" yaml:"special"`
	ExcludeAmbiguous bool   `mapstructure:"exclude_ambiguous" yaml:"exclude_ambiguous"`
	Count            int    `mapstructure:"count" yaml:"count" validate:"min=1"`
	Output           string `mapstructure:"output" yaml:"output" validate:"required"`
	Hash             bool   `mapstructure:"hash" yaml:"hash"`
	BcryptCost       int    `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost" validate:"min=4,max=31"`
	LogLevel         string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile          string `mapstructure:"log_file" yaml:"log_file"`
	Telemetry        bool   `mapstructure:"telemetry" yaml:"telemetry"`
}

// Defaults mirrors password.DefaultOptions for the generation keys.
func Defaults() *Config {
	opts := password.DefaultOptions()
	return &Config{
		Length:           opts.Length,
		Uppercase:        opts.UseUppercase,
		Digits:           opts.UseDigits,
		Special:          opts.UseSpecial,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
		Count:            1,
		Output:           shared.DefaultPasswordFile,
		BcryptCost:       10,
		LogLevel:         "warn",
	}
}

// Options converts the generation keys to password.Options.
func (c *Config) Options() password.Options {
	return password.Options{
		Length:           c.Length,
		UseUppercase:     c.Uppercase,
		UseDigits:        c.Digits,
		UseSpecial:       c.Special,
		ExcludeAmbiguous: c.ExcludeAmbiguous,
	}
}

// Validate checks the struct tags. Length is left to the generator so that
// a short length surfaces as password.ErrInvalidLength.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !cerr.As(err, &verrs) {
		return pwgen_err.WrapValidationError(err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return pwgen_err.WrapValidationError(pwgen_err.NewValidationError(
		"invalid configuration: "+strings.Join(msgs, "; "),
		"Fix the value in the config file, the PWGEN_* environment or the flag",
	))
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func describe(fe validator.FieldError) string {
	key := yamlKey(fe.StructField())
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", key, fe.Param(), fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", key)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

var fieldKeys = map[string]string{
	"ExcludeAmbiguous": "exclude_ambiguous",
	"BcryptCost":       "bcrypt_cost",
	"LogLevel":         "log_level",
	"LogFile":          "log_file",
}

func yamlKey(field string) string {
	if k, ok := fieldKeys[field]; ok {
		return k
	}
	return strings.ToLower(field)
}
