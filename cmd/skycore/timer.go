package main

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// startPhase logs description's elapsed duration when the returned
// func is called, mirroring the original's RAII Time helper (construct
// at phase start, destruct — and print — at phase end) as a deferred
// closure, the idiomatic Go equivalent of a scope-exit timer.
func startPhase(description string) func() {
	start := time.Now()
	return func() {
		log.WithFields(log.Fields{"phase": description, "elapsed": time.Since(start)}).Info("phase complete")
	}
}
