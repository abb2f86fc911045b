package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

// forwardSignals turns SIGINT and SIGTERM into interrupt events on screen so
// the event loop handles them like any other input. The returned func stops
// forwarding; until it is called the signals do not kill the process.
func forwardSignals(screen tcell.Screen) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				_ = screen.PostEvent(tcell.NewEventInterrupt(sig))
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
