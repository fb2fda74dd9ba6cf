package observability

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestObserveStore(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	require.NoError(t, p.ObserveStore("events.load_all", func() error { return nil }))

	boom := fmt.Errorf("open: %w", fs.ErrPermission)
	err := p.ObserveStore("events.save_all", func() error { return boom })
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.StoreErrorsTotal.WithLabelValues("events.save_all", "permission")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.StoreOpDuration))
}

func TestClassifyStoreErr(t *testing.T) {
	assert.Equal(t, "not_exist", classifyStoreErr(fmt.Errorf("x: %w", fs.ErrNotExist)))
	assert.Equal(t, "canceled", classifyStoreErr(context.Canceled))
	assert.Equal(t, "is_dir", classifyStoreErr(errors.New("rename a b: is a directory")))
	assert.Equal(t, "unknown", classifyStoreErr(errors.New("weird")))
}

func TestObserveOp(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	p.ObserveOp("register", "ok", time.Millisecond)
	p.ObserveOp("register", "capacity", time.Millisecond)
	p.ObserveOp("register", "capacity", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.OpResults.WithLabelValues("register", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.OpResults.WithLabelValues("register", "capacity")))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewProm(reg)
	p.LoginAttempts.WithLabelValues("ok").Inc()

	require.NoError(t, WriteTextfile("", reg))

	path := filepath.Join(t.TempDir(), "eventdesk.prom")
	require.NoError(t, WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `eventdesk_auth_login_attempts_total{result="ok"} 1`)
}

func TestSessionMetrics(t *testing.T) {
	m := NewSessionMetrics()
	m.Observe("ok", 2*time.Millisecond)
	m.Observe("forbidden", 4*time.Millisecond)
	m.Observe("validation", 6*time.Millisecond)

	s := m.Snapshot()
	assert.Equal(t, uint64(1), s.Succeeded)
	assert.Equal(t, uint64(1), s.Denied)
	assert.Equal(t, uint64(1), s.Failed)
	assert.Equal(t, uint64(3), s.Operations)
	assert.Equal(t, 4*time.Millisecond, s.AverageDuration)
	assert.Equal(t, 6*time.Millisecond, s.MaxDuration)

	assert.Equal(t, SessionSnapshot{}, NewSessionMetrics().Snapshot())
}

func TestLoggerAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("dev", &buf)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	log.DebugContext(ctx, "inside span")
	span.End()

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"`+span.SpanContext().TraceID().String()+`"`)
	assert.Contains(t, out, `"span_id"`)

	buf.Reset()
	NewLogger("prod", &buf).Debug("hidden")
	assert.Empty(t, buf.String())
}
