package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"curator/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, cfg *config.Config) logger.Interface {
	return newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM locations", 3 }
	slowCfg := &config.Config{Store: &config.StoreConfig{SlowQueryThreshold: 10 * time.Millisecond}}

	tests := []struct {
		name    string
		cfg     *config.Config
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "fast query is quiet", cfg: slowCfg, begin: time.Now()},
		{name: "not found is quiet", cfg: slowCfg, begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "failure", cfg: slowCfg, begin: time.Now(), err: errors.New("relation does not exist"), wantMsg: "GORM query failed"},
		{name: "slow query", cfg: slowCfg, begin: time.Now().Add(-time.Second), wantMsg: "GORM slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestGormLogger(&buf, tt.cfg).Trace(context.Background(), tt.begin, query, tt.err)

			if tt.wantMsg == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantMsg)
			assert.Contains(t, buf.String(), "SELECT * FROM locations")
		})
	}
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	newTestGormLogger(&buf, cfg).Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM job_titles", 1
	}, nil)

	assert.Contains(t, buf.String(), "GORM query")
}

func TestTruncateSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1", truncateSQL("SELECT 1"))

	long := strings.Repeat("x", maxLoggedSQLLength+10)
	got := truncateSQL(long)
	assert.True(t, strings.HasSuffix(got, "(1034 bytes)"))
	assert.Len(t, got, maxLoggedSQLLength+len("... (1034 bytes)"))
}
