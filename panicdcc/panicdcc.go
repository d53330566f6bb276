// Package panicdcc reports unrecoverable failures over the Debug
// Communication Channel and halts.
//
// On embeddedgo builds (GOOS=noos) importing the package also installs the
// channel as the runtime's failsafe writer, so early boot print() and
// runtime panic output reach the attached debugger without any setup:
//
//	import _ "github.com/japaric/arm-dcc/panicdcc"
package panicdcc

import (
	"runtime"
	"sync/atomic"

	dcc "github.com/japaric/arm-dcc"
	"github.com/japaric/arm-dcc/debug"
)

// Location is a source position attached to a failure report.
type Location struct {
	File      string
	Line, Col uint32
}

// Report renders v over the debug channel and halts. It never returns.
//
// The report is a single line in the format host tools grep for:
//
//	panicked at '<payload>', <file>:<line>:<col>
//
// String payloads are written verbatim, anything else renders as the
// literal "dyn Any". The location is Report's caller; the Go runtime keeps
// no column information, so the column always reads 1.
func Report(v any) {
	loc := &Location{Col: 1}
	if _, file, line, ok := runtime.Caller(1); ok {
		loc.File = file
		loc.Line = uint32(line)
	} else {
		loc = nil
	}
	ReportAt(v, loc)
}

// ReportAt is [Report] with an explicit location. A nil loc omits the
// location segment entirely. It never returns.
func ReportAt(v any, loc *Location) {
	render(v, loc)
	halt()
}

// render writes the report through the channel. Everything here must be
// safe to run while the program is failing: no locks, no heap allocation
// and no calls into code that may itself panic. The channel can't fail, so
// there are no write results to check.
//
//go:nosplit
func render(v any, loc *Location) {
	var buf [10]byte // len("4294967295")

	dcc.WriteString("panicked at '")
	if s, ok := v.(string); ok {
		dcc.WriteString(s)
	} else {
		dcc.WriteString("dyn Any")
	}
	dcc.WriteString("'")
	if loc != nil {
		dcc.WriteString(", ")
		dcc.WriteString(loc.File)
		dcc.WriteString(":")
		dcc.WriteAll(utoa(buf[:], loc.Line))
		dcc.WriteString(":")
		dcc.WriteAll(utoa(buf[:], loc.Col))
	}
	dcc.WriteString("\n")
}

// utoa renders v in decimal into the tail of buf and returns the slice it
// used. buf must hold at least 10 bytes.
//
//go:nosplit
func utoa(buf []byte, v uint32) []byte {
	i := len(buf)
	for {
		i--
		buf[i] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return buf[i:]
}

var spin atomic.Uint32

// halt loops forever without re-entering user code. Release builds issue a
// sequentially consistent atomic load on every iteration, which keeps the
// optimizer from treating the empty infinite loop as free of effects.
// Debug builds compile the load out.
//
//go:nosplit
func halt() {
	for {
		if !debug.Enabled {
			spin.Load()
		}
	}
}
