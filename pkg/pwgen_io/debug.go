// pkg/pwgen_io/debug.go

package pwgen_io

import (
	"os"
	"os/user"

	"go.uber.org/zap"
)

// LogRuntimeExecutionContext records who is running the binary, at debug level.
func LogRuntimeExecutionContext(rc *RuntimeContext) {
	if u, err := user.Current(); err != nil {
		rc.Log.Debug("Failed to get current user", zap.Error(err))
	} else {
		rc.Log.Debug("User context",
			zap.String("username", u.Username),
			zap.String("uid", u.Uid),
			zap.String("gid", u.Gid),
		)
	}

	if exe, err := os.Executable(); err == nil {
		rc.Log.Debug("Executing binary", zap.String("path", exe))
	}
	if wd, err := os.Getwd(); err == nil {
		rc.Log.Debug("Working directory", zap.String("path", wd))
	}
}
