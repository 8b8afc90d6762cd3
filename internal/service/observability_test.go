package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	observe(context.Background(), obs, "set_day", time.Now(), nil, map[string]any{"user_id": int64(1)})

	out := buf.String()
	assert.Contains(t, out, "use_case=set_day")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "user_id=1")
}

func TestLogUseCaseObserver_Error(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	observe(context.Background(), obs, "set_day", time.Now(), errors.New("boom"), nil)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}
