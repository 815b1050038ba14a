package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"lingo/config"
	deliverycontext "lingo/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "queries are only logged in debug mode")

	l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is expected control flow")

	l.Trace(ctx, time.Now(), sqlFn, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")

	buf.Reset()
	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugLogsQueriesWithRequestLogger(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, nil)

	assert.Empty(t, buf.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
	assert.Contains(t, reqBuf.String(), "SELECT 1")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFn, errors.New("ignored"))
	silent.Error(context.Background(), "ignored %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "low")
	assert.Contains(t, buf.String(), "pool low")
}
