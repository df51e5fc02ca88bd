package pwgen_io

import (
	"context"
	"errors"
	"testing"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/pwgen_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewContext(t *testing.T) {
	logger.SetLogger(zaptest.NewLogger(t))

	rc := NewContext(context.Background(), "generate")
	require.NotNil(t, rc)
	assert.NotNil(t, rc.Ctx)
	assert.NotNil(t, rc.Log)
	assert.NotNil(t, rc.Span)
	assert.Equal(t, "generate", rc.Command)
	assert.NotEmpty(t, rc.TraceID)
	assert.NotNil(t, rc.Attributes)

	var err error
	rc.End(&err)
}

func TestNewContext_NilParent(t *testing.T) {
	logger.SetLogger(zaptest.NewLogger(t))
	//nolint:staticcheck // nil parent is tolerated on purpose
	rc := NewContext(nil, "verify")
	assert.NotNil(t, rc.Ctx)
}

func TestHandlePanic(t *testing.T) {
	logger.SetLogger(zaptest.NewLogger(t))
	rc := NewContext(context.Background(), "panicky")

	run := func() (err error) {
		defer rc.HandlePanic(&err)
		panic("boom")
	}

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic: boom")
}

func TestEnd_AllOutcomes(t *testing.T) {
	logger.SetLogger(zaptest.NewLogger(t))

	for _, err := range []error{
		nil,
		pwgen_err.NewExpectedError(context.Background(), errors.New("bad length")),
		errors.New("disk full"),
	} {
		rc := NewContext(context.Background(), "generate")
		rc.Attributes["count"] = "1"
		e := err
		rc.End(&e)
	}
	rc := NewContext(context.Background(), "generate")
	rc.End(nil)
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "", ClassifyError(nil))
	assert.Equal(t, "user", ClassifyError(pwgen_err.NewExpectedError(context.Background(), errors.New("x"))))
	assert.Equal(t, "system", ClassifyError(errors.New("x")))
}
