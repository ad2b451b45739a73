package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(debug bool) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(debug)
	l.base = func() *zap.SugaredLogger {
		return zap.New(core).Sugar()
	}
	return l, logs
}

func TestGormLoggerTraceLevels(t *testing.T) {
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l, logs := newObservedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sql, nil)
	if logs.Len() != 0 {
		t.Fatalf("release mode should not log plain queries, got %d entries", logs.Len())
	}
	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	if logs.Len() != 0 {
		t.Fatalf("record not found should not be logged as an error")
	}
	l.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	if got := logs.FilterMessage("gorm_sql_failed").Len(); got != 1 {
		t.Fatalf("expected one failed sql entry, got %d", got)
	}

	debugLogger, debugLogs := newObservedGormLogger(true)
	debugLogger.Trace(context.Background(), time.Now(), sql, nil)
	if got := debugLogs.FilterMessage("gorm_sql").Len(); got != 1 {
		t.Fatalf("debug mode should log queries, got %d", got)
	}
}

func TestGormLoggerLogModeReturnsCopy(t *testing.T) {
	l, logs := newObservedGormLogger(true)
	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	if logs.Len() != 0 {
		t.Fatalf("silent logger should drop everything")
	}
	if l.level != gormlogger.Info {
		t.Fatalf("original logger level changed")
	}
}
