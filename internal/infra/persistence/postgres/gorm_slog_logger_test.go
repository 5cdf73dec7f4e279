package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestNewGormSlogLogger_UsesConfig(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{SlowQueryThreshold: time.Second}}
	cfg.Env.Debug = true

	l, ok := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.True(t, ok)
	assert.Equal(t, logger.Info, l.level)
	assert.Equal(t, time.Second, l.slowThreshold)

	l, ok = newGormSlogLogger(slog.Default(), nil).(*gormSlogLogger)
	assert.True(t, ok)
	assert.Equal(t, logger.Warn, l.level)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("query error is logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), nil)

		l.Trace(context.Background(), time.Now(), sqlFn("INSERT INTO phones", 0), errors.New("duplicate key"))

		assert.Contains(t, buf.String(), "Phone store query failed")
		assert.Contains(t, buf.String(), "duplicate key")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), nil)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT * FROM phones", 0), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query is logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), nil)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT * FROM phones", 3), nil)

		assert.Contains(t, buf.String(), "Phone store slow query")
	})

	t.Run("fast query is silent below info", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), nil)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT * FROM phones", 3), nil)

		assert.Empty(t, buf.String())
	})

	t.Run("request logger is preferred", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), nil)
		ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped))

		l.Trace(ctx, time.Now(), sqlFn("DELETE FROM phones", 0), errors.New("boom"))

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), "Phone store query failed")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), nil).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
