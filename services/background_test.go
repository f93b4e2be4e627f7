package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBackgroundRunnerLogsFailuresAndPanics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	runner := NewBackgroundRunner(logger, time.Second)

	runner.Go("ok", nil, func(ctx context.Context) error { return nil })
	runner.Go("fails", logrus.Fields{"order_id": "o1"}, func(ctx context.Context) error {
		return errors.New("smtp down")
	})
	runner.Go("panics", nil, func(ctx context.Context) error { panic("boom") })
	runner.Wait()

	var warned, panicked bool
	for _, entry := range hook.AllEntries() {
		switch entry.Data["task"] {
		case "fails":
			warned = entry.Level == logrus.WarnLevel && entry.Data["order_id"] == "o1"
		case "panics":
			panicked = entry.Level == logrus.ErrorLevel && entry.Data["panic"] == "boom"
		}
	}
	if !warned || !panicked {
		t.Fatalf("entries = %+v", hook.AllEntries())
	}
}

func TestBackgroundRunnerAppliesTimeout(t *testing.T) {
	logger, _ := test.NewNullLogger()
	runner := NewBackgroundRunner(logger, 20*time.Millisecond)

	done := make(chan error, 1)
	runner.Go("slow", nil, func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	})
	runner.Wait()

	if err := <-done; !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ctx err = %v", err)
	}
}
