package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultTaskTimeout = 30 * time.Second

// BackgroundRunner fires side-channel tasks after a request has been answered.
// Each task runs once; failures and panics are logged and dropped.
type BackgroundRunner struct {
	logger  *logrus.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewBackgroundRunner(logger *logrus.Logger, timeout time.Duration) *BackgroundRunner {
	if timeout <= 0 {
		timeout = defaultTaskTimeout
	}
	return &BackgroundRunner{logger: logger, timeout: timeout}
}

func (r *BackgroundRunner) Go(name string, fields logrus.Fields, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		entry := r.logger.WithField("task", name).WithFields(fields)
		defer func() {
			if p := recover(); p != nil {
				entry.WithField("panic", fmt.Sprint(p)).Error("background task panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		started := time.Now()
		if err := fn(ctx); err != nil {
			entry.WithError(err).Warn("background task failed")
			return
		}
		entry.WithField("took", time.Since(started).String()).Debug("background task done")
	}()
}

// Wait blocks until every submitted task has returned.
func (r *BackgroundRunner) Wait() {
	r.wg.Wait()
}
