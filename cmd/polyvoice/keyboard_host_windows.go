//go:build windows

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// KeyboardHost reads raw stdin and plays the engine from it. Terminals
// report no key releases, so every note is released after a fixed hold.
type KeyboardHost struct {
	engine       Engine
	keys         *keyMap
	hold         time.Duration
	stopCh       chan struct{}
	done         chan struct{}
	quit         chan struct{}
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

// NewKeyboardHost creates a host playing engine with notes held for hold.
func NewKeyboardHost(engine Engine, hold time.Duration) *KeyboardHost {
	return &KeyboardHost{
		engine: engine,
		keys:   newKeyMap(),
		hold:   hold,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
}

// Quit is closed when the user asks to leave.
func (h *KeyboardHost) Quit() <-chan struct{} { return h.quit }

// Start puts stdin in raw mode and begins reading in a goroutine. Call
// Stop to restore stdin.
func (h *KeyboardHost) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return fmt.Errorf("keyboard: raw mode: %w", err)
	}
	h.oldTermState = oldState

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := os.Stdin.Read(buf)
			if n > 0 {
				h.press(buf[0])
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
	return nil
}

// Stop terminates the reader and restores stdin. A read already blocked
// in the console returns after the next key.
func (h *KeyboardHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
