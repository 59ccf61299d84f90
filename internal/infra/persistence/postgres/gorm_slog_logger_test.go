package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"timesheet/config"
	"timesheet/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingQueryLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	baseLogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newQueryLogger(baseLogger, cfg), buf
}

func noRows() (string, int64) {
	return "SELECT 1", 0
}

func TestQueryLogger_SuppressesRecordNotFound(t *testing.T) {
	ql, buf := newCapturingQueryLogger(&config.Config{})

	ql.Trace(context.Background(), time.Now(), noRows, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_LogsFailures(t *testing.T) {
	ql, buf := newCapturingQueryLogger(&config.Config{})

	ql.Trace(context.Background(), time.Now(), noRows, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestQueryLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.SlowQueryThreshold = 50 * time.Millisecond
	ql, buf := newCapturingQueryLogger(cfg)

	ql.Trace(context.Background(), time.Now().Add(-time.Second), noRows, nil)

	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), "50ms")
}

func TestQueryLogger_DebugLogsEveryStatement(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	ql, buf := newCapturingQueryLogger(cfg)

	ql.Trace(context.Background(), time.Now(), noRows, nil)

	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestQueryLogger_SilentModeLogsNothing(t *testing.T) {
	ql, buf := newCapturingQueryLogger(&config.Config{})

	ql.LogMode(logger.Silent).(*queryLogger).Trace(context.Background(), time.Now().Add(-time.Second), noRows, errors.New("ignored"))

	assert.Empty(t, buf.String())
}
