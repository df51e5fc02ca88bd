// Package fileops persists generated passwords as plain-text lines.
package fileops

import (
	"bufio"
	"context"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrIO marks every failure to read or write a password file.
var ErrIO = cerr.New("password file I/O failed")

// FileSystemOperations provides line-oriented file operations
type FileSystemOperations struct {
	logger *zap.Logger
}

// NewFileSystemOperations creates a new filesystem operations implementation
func NewFileSystemOperations(logger *zap.Logger) *FileSystemOperations {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSystemOperations{
		logger: logger.Named("filesystem"),
	}
}

// AppendLine appends line and a newline to path, creating the file with
// owner-only permissions if it is absent. The handle is closed on every
// path, and a failed close after a good write is still reported.
func (f *FileSystemOperations) AppendLine(ctx context.Context, path, line string) (err error) {
	f.logger.Debug("Appending line",
		zap.String("path", path),
		zap.Int("size", len(line)+1))

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.PasswordFilePerm)
	if err != nil {
		f.logger.Error("Failed to open file for append",
			zap.String("path", path),
			zap.Error(err))
		return ioError(err, path, "append to")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			f.logger.Warn("Failed to close file", zap.String("path", path), zap.Error(closeErr))
			if err == nil {
				err = ioError(closeErr, path, "close")
			}
		}
	}()

	if _, err := file.WriteString(line + "\n"); err != nil {
		f.logger.Error("Failed to write line",
			zap.String("path", path),
			zap.Error(err))
		return ioError(err, path, "write to")
	}

	f.logger.Info("Line appended", zap.String("path", path))
	return nil
}

// ReadLines returns every line of path without trailing newlines.
func (f *FileSystemOperations) ReadLines(ctx context.Context, path string) ([]string, error) {
	f.logger.Debug("Reading lines", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		f.logger.Error("Failed to open file", zap.String("path", path), zap.Error(err))
		return nil, ioError(err, path, "read")
	}
	defer func() {
		if err := file.Close(); err != nil {
			f.logger.Warn("Failed to close file", zap.Error(err))
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError(err, path, "read")
	}

	f.logger.Debug("Lines read", zap.String("path", path), zap.Int("count", len(lines)))
	return lines, nil
}

func ioError(err error, path, operation string) error {
	return cerr.Mark(pwgen_err.ClassifyFileError(err, path, operation), ErrIO)
}
