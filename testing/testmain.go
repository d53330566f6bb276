//go:build arm && noos

// Package testing provides utilities for tests that run on the target with
// only a debug probe attached.
package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/embeddedgo/fs/termfs"

	dcc "github.com/japaric/arm-dcc"
	_ "github.com/japaric/arm-dcc/panicdcc"
)

// TestMain redirects stdout and stderr to the debug communication channel
// and runs the tests. Attach a drain on the host (dcclog, xsdb's
// readjtaguart) to see the verdict.
func TestMain(m *testing.M) {
	var err error

	fs := termfs.NewLight("termfs", nil, dcc.Writer{})
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")

	os.Exit(m.Run())
}
