// dcclog drains a Debug Communication Channel stream exported by a debug
// probe server and renders it as a log stream.
//
// Probe servers expose the DCC as a raw TCP byte stream, e.g. OpenOCD
// after 'target_request debugmsgs charmsg' or xsdb's readjtaguart with a
// socket handle. dcclog connects, copies every byte to stdout and an
// optional log file, and exits non-zero once a panic report comes over the
// wire, which makes it usable as a CI test runner.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"golang.org/x/term"
)

const usageString = `DCC log drain.

Usage: %s [flags] <host:port>

`

var (
	flags = flag.NewFlagSet("dcclog", flag.ExitOnError)

	outfile = flags.String("o", "", "Tee the raw stream to `file`")
	run     = flags.String("run", "", "Launch the debugger with `command` before connecting")
	quiet   = flags.Bool("q", false, "Don't print the status line")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "dcclog")
	flags.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flags.Usage = usage
	flags.Parse(os.Args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	// log.Fatalln would skip the deferred debugger teardown in tail, so
	// the exit happens out here.
	panicked, err := tail(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	if panicked {
		os.Exit(1)
	}
}

// tail connects to the probe server at addr and drains the stream until it
// ends. A debugger launched with -run is torn down again on every return
// path, including connect failures.
func tail(addr string) (panicked bool, err error) {
	if *run != "" {
		cmd, closer, err := launch(*run)
		if err != nil {
			return false, fmt.Errorf("launch debugger: %w", err)
		}
		defer closer.Close()
		defer cmd.Process.Kill()
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return false, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	var w io.Writer = os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			return false, fmt.Errorf("create logfile: %w", err)
		}
		defer f.Close()
		w = io.MultiWriter(os.Stdout, f)
	}

	if !*quiet && term.IsTerminal(int(os.Stderr.Fd())) {
		log.Println("draining", addr)
	}

	panicked, err = drain(conn, w)
	if err != nil {
		return panicked, fmt.Errorf("drain: %w", err)
	}
	return panicked, nil
}
