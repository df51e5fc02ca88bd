// pkg/fileops/save.go

package fileops

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// SavePassword appends password as one line of filename. An empty filename
// means shared.DefaultPasswordFile in the working directory.
func SavePassword(ctx context.Context, password, filename string) error {
	if filename == "" {
		filename = shared.DefaultPasswordFile
	}

	log := otelzap.Ctx(ctx)
	log.Debug("Saving password", zap.String("file", filename))

	if err := NewFileSystemOperations(zap.L()).AppendLine(ctx, filename, password); err != nil {
		log.Error("Failed to save password", zap.String("file", filename), zap.Error(err))
		return err
	}

	log.Info("Password saved", zap.String("file", filename))
	return nil
}
