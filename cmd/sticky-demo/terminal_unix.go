//go:build linux || darwin

package main

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	fd      int
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	state := &rawModeState{fd: fd, termios: *termios}

	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}
	return state, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(state.fd, ioctlSetTermios, &state.termios)
}

// terminalSize returns the terminal dimensions, falling back to 80x24.
func terminalSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// waitReadable blocks until fd has input or timeout elapses.
// Returns (true, nil) if the fd is ready for reading.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(fd+1, &readFds, nil, nil, &tv)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}

// readInput reads whatever input is pending on fd.
func readInput(fd int, buf []byte) (int, error) {
	return unix.Read(fd, buf)
}

// resizeSignal is the signal delivered when the terminal is resized.
var resizeSignal = unix.SIGWINCH
