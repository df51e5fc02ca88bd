package pwgen_err

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpectedError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.NoError(t, NewExpectedError(ctx, nil))

	originalErr := errors.New("user configuration error")
	wrappedErr := NewExpectedError(ctx, originalErr)
	require.Error(t, wrappedErr)

	var userErr *UserError
	assert.True(t, errors.As(wrappedErr, &userErr))
	assert.True(t, errors.Is(wrappedErr, originalErr))
	assert.Equal(t, originalErr.Error(), wrappedErr.Error())
}

func TestIsExpectedUserError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "regular error", err: errors.New("system error"), want: false},
		{name: "user error", err: &UserError{cause: errors.New("user mistake")}, want: true},
		{name: "wrapped user error", err: fmt.Errorf("outer: %w", NewExpectedError(context.Background(), errors.New("bad"))), want: true},
		{name: "stacked user error", err: cerr.WithStack(NewExpectedError(context.Background(), errors.New("bad"))), want: true},
		{name: "validation error", err: NewValidationError("bad length"), want: true},
		{name: "filesystem error", err: NewFilesystemError("disk full", errors.New("ENOSPC")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsExpectedUserError(tt.err))
		})
	}
}

func TestReport(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "user error",
			err:  NewExpectedError(context.Background(), errors.New("password length should be at least 4 characters")),
			want: "Error: password length should be at least 4 characters\n",
		},
		{
			name: "validation error hides remediation",
			err:  NewValidationError("invalid literal for length: \"abc\"", "enter a whole number"),
			want: "Error: invalid literal for length: \"abc\"\n",
		},
		{
			name: "system error",
			err:  NewFilesystemError("cannot append passwords.txt", errors.New("read-only file system")),
			want: "An unexpected error occurred: cannot append passwords.txt: read-only file system\n",
		},
		{
			name: "plain error",
			err:  errors.New("EOF"),
			want: "An unexpected error occurred: EOF\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			Report(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestGetExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, GetExitCode(nil))
	assert.Equal(t, 0, GetExitCode(NewExpectedError(context.Background(), errors.New("x"))))
	assert.Equal(t, 2, GetExitCode(NewValidationError("x")))
	assert.Equal(t, 3, GetExitCode(NewInternalError("x", nil)))
	assert.Equal(t, 130, GetExitCode(NewUserCancelledError("save")))
	assert.Equal(t, 1, GetExitCode(NewFilesystemError("x", nil)))
	assert.Equal(t, 1, GetExitCode(errors.New("x")))
}

func TestClassifyFileError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ClassifyFileError(nil, "p", "append"))

	perm := ClassifyFileError(&fs.PathError{Op: "open", Path: "p", Err: fs.ErrPermission}, "p", "append")
	var ce *ClassifiedError
	require.True(t, errors.As(perm, &ce))
	assert.Equal(t, CategoryPermission, ce.Category)
	assert.True(t, errors.Is(perm, os.ErrPermission))

	missing := ClassifyFileError(&fs.PathError{Op: "open", Path: "d/p", Err: fs.ErrNotExist}, "d/p", "append")
	require.True(t, errors.As(missing, &ce))
	assert.Equal(t, CategorySystem, ce.Category)
	assert.Contains(t, ce.Message, "directory does not exist")

	again := ClassifyFileError(perm, "p", "append")
	assert.Same(t, perm, again)
}

func TestClassifiedErrorMessage(t *testing.T) {
	t.Parallel()
	err := NewFilesystemError("cannot append out.txt", errors.New("disk full"), "free some space")
	msg := err.Error()
	assert.Contains(t, msg, "cannot append out.txt")
	assert.Contains(t, msg, "Cause: disk full")
	assert.Contains(t, msg, "1. free some space")
	assert.Equal(t, "system", CategorySystem.String())
}
