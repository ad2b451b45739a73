package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type stubService struct {
	name    string
	startFn func(ctx context.Context) error
	stopped bool
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	if s.startFn != nil {
		return s.startFn(ctx)
	}
	<-ctx.Done()
	return nil
}

func (s *stubService) Stop(ctx context.Context) error {
	s.stopped = true
	return nil
}

func TestRunnerStopsAllServicesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	first := &stubService{name: "first"}
	closed := make([]string, 0, 2)
	resources := NewResourceService(
		Closer{Name: "database", Close: func() error { closed = append(closed, "database"); return nil }},
		Closer{Name: "redis", Close: func() error { closed = append(closed, "redis"); return nil }},
	)

	done := make(chan error, 1)
	go func() {
		done <- NewRunner(first, resources).Run(ctx, time.Second, zap.NewNop().Sugar())
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancelled run should return nil, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not stop")
	}
	if !first.stopped {
		t.Fatalf("service should be stopped")
	}
	if strings.Join(closed, ",") != "database,redis" {
		t.Fatalf("unexpected close order %v", closed)
	}
}

func TestRunnerReturnsStartError(t *testing.T) {
	boom := errors.New("listen failed")
	failing := &stubService{name: "http", startFn: func(ctx context.Context) error { return boom }}
	resources := NewResourceService()

	err := NewRunner(failing, resources).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("want start error, got %v", err)
	}
}

func TestResourceServiceJoinsErrors(t *testing.T) {
	svc := NewResourceService(
		Closer{Name: "database", Close: func() error { return errors.New("busy") }},
		Closer{Name: "redis"},
	)
	err := svc.Stop(context.Background())
	if err == nil || !strings.Contains(err.Error(), "database: busy") {
		t.Fatalf("unexpected stop error %v", err)
	}
}

func TestRunnerReturnsCloseErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dbErr := errors.New("database is locked")
	resources := NewResourceService(
		Closer{Name: "database", Close: func() error { return dbErr }},
		Closer{Name: "redis", Close: func() error { return nil }},
	)
	cancel()

	err := NewRunner(&stubService{name: "http"}, resources).Run(ctx, time.Second, nil)
	if !errors.Is(err, dbErr) {
		t.Fatalf("close error should reach the caller, got %v", err)
	}
	if !strings.Contains(err.Error(), "stop resources: database: database is locked") {
		t.Fatalf("close error should name the resource, got %v", err)
	}
}

func TestRunnerRejectsNilService(t *testing.T) {
	if err := NewRunner(&stubService{name: "http"}, nil).Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("nil service should fail")
	}
}

func TestBuildRunnerRequiresDB(t *testing.T) {
	if _, err := BuildRunner(Options{}); err == nil {
		t.Fatalf("missing config should fail")
	}
}
