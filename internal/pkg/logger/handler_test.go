package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "abc-123")
	l.InfoContext(ctx, "hello")

	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
}

func TestRemoteFilterDropsRecordsWithoutTrace(t *testing.T) {
	t.Parallel()

	var local, remote bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}
	l := log.New(&ContextHandler{tee})

	l.Info("background job")
	assert.Contains(t, local.String(), "background job")
	assert.Empty(t, remote.String())

	l.InfoContext(context.WithValue(context.Background(), TraceIDKey, "t-1"), "request")
	assert.Contains(t, remote.String(), "request")
	assert.NotContains(t, remote.String(), "background job")
}
