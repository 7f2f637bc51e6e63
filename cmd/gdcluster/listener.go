package main

import (
	"fmt"

	"github.com/TIVerse/gophercluster/core"
)

// stdoutListener prints task lifecycle events to stdout. It implements
// core.Listener; the dedicated listener-plumbing concern for a real UI is
// out of gophercluster's core scope (spec §1).
type stdoutListener struct{}

func (stdoutListener) OnBegun() {
	fmt.Println("clustering started")
}

func (stdoutListener) OnEnded(outcome core.Outcome) {
	fmt.Printf("clustering finished: %s\n", outcome)
}

func (stdoutListener) OnMessage(msg string) {
	fmt.Println(msg)
}

func (stdoutListener) OnProgress(fraction float64) {
	fmt.Printf("progress: %.1f%%\n", fraction*100)
}

func (stdoutListener) OnPaused() {
	fmt.Println("paused")
}

func (stdoutListener) OnResumed() {
	fmt.Println("resumed")
}
