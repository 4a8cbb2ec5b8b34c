package async

import (
	"time"

	"github.com/sirupsen/logrus"
)

func pcall(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("async/pcall: Error=%v", err)
		}
	}()

	fn()
}

// Run calls fn on its own goroutine. A panic is logged, not propagated.
func Run(fn func()) {
	go pcall(fn)
}

// Every calls fn once per interval until the returned stop function runs.
// A panicking tick does not end the loop.
func Every(interval time.Duration, fn func()) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pcall(fn)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
