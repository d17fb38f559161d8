//go:build integration
// +build integration

package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain ensures the shared Docker container is cleaned up even when the
// run is interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("interrupted, cleaning up Docker containers")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	CleanupSharedContainer()
	os.Exit(code)
}
