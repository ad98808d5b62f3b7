//go:build !linux && !darwin

package main

import (
	"errors"
	"os"
	"syscall"
	"time"
)

var errUnsupportedTerminal = errors.New("interactive mode is only supported on linux and darwin; use the frames command")

type rawModeState struct{}

func enableRawMode(int) (*rawModeState, error) {
	return nil, errUnsupportedTerminal
}

func disableRawMode(*rawModeState) error {
	return nil
}

func terminalSize(int) (int, int) {
	return 80, 24
}

func waitReadable(int, time.Duration) (bool, error) {
	return false, errUnsupportedTerminal
}

func readInput(int, []byte) (int, error) {
	return 0, errUnsupportedTerminal
}

var resizeSignal os.Signal = syscall.Signal(0)
