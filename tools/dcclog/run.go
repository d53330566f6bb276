package main

import (
	"io"
	"os"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

// launch starts the debugger command under a pty, so it keeps its output
// line-buffered and interactive even with dcclog in between. The command
// line is split with shell quoting rules.
func launch(command string) (*pty.Cmd, io.Closer, error) {
	args, err := shellwords.Split(command)
	if err != nil {
		return nil, nil, err
	}

	ptmx, err := pty.New()
	if err != nil {
		return nil, nil, err
	}

	cmd := ptmx.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		ptmx.Close()
		return nil, nil, err
	}

	// The debugger's own chatter goes to stderr, the DCC stream arrives
	// separately over TCP.
	go io.Copy(os.Stderr, ptmx)

	return cmd, ptmx, nil
}
