package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// StartScheduler runs scan cycles on a fixed interval until the context
// is cancelled. A panicking cycle is recovered and logged; the next tick
// runs normally.
func StartScheduler(ctx context.Context, interval time.Duration, scanner *Scanner, log *logrus.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("interval", interval.String()).Info("reminder scheduler started")
	for {
		select {
		case <-ctx.Done():
			log.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithField("panic", r).Error("scan cycle panicked, continuing next tick")
					}
				}()
				scanner.Run(ctx)
			}()
		}
	}
}
