// pkg/config/write.go

package config

import (
	"context"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ErrExists is returned by Write when path exists and force is false.
var ErrExists = cerr.New("config file already exists")

// Write saves cfg as YAML to path with owner-only permissions, creating the
// parent directory. An existing file is only replaced when force is set.
func Write(ctx context.Context, path string, cfg *Config, force bool) error {
	log := otelzap.Ctx(ctx)
	log.Debug("Writing config file", zap.String("path", path), zap.Bool("force", force))

	if !force {
		if _, err := os.Stat(path); err == nil {
			return cerr.Mark(pwgen_err.NewValidationError(
				ErrExists.Error()+": "+path,
				"Pass --force to overwrite it",
			), ErrExists)
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := xdg.EnsureDir(path); err != nil {
		return pwgen_err.ClassifyFileError(err, path, "create directory for")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Error("Failed to write config file", zap.String("path", path), zap.Error(err))
		return pwgen_err.ClassifyFileError(err, path, "write")
	}

	log.Info("Config file written", zap.String("path", path), zap.Int("size", len(data)))
	return nil
}
