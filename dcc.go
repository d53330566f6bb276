// Package dcc writes to the ARM Debug Communication Channel (DCC), a
// one-word hardware channel between the core and an attached debug probe.
// The channel is a status-gated register pair in coprocessor CP14: the
// writer polls a busy flag until the host has drained the previous word,
// then stores the next one. There is no initialization and no teardown,
// the registers are assumed ready whenever code runs.
//
// The host side attaches via JTAG and drains the channel, e.g. with xsdb's
// readjtaguart or the dcclog tool from this repository. The wire format is
// the plain byte stream written here, without framing.
//
// The backend is selected at build time:
//
//   - default on arm: direct CP14 register access
//   - dccextern tag: call an externally linked __dcc_write routine
//   - dccnop tag: discard all writes, never touch hardware
//
// The dccnop variant exists because the default backend blocks forever if
// no debugger ever drains the channel. It takes precedence over dccextern.
package dcc

// WriteWord pushes a single word over the channel. It blocks until the
// debugger has accepted the previous word.
//
//go:nosplit
func WriteWord(word uint32) {
	writeWord(word)
}

// WriteByte zero-extends b to a word and pushes it over the channel.
//
//go:nosplit
func WriteByte(b byte) {
	writeWord(uint32(b))
}

// WriteAll writes p over the channel, one word per byte, in order. The
// channel transfers single units, so byte order never comes into play.
//
//go:nosplit
func WriteAll(p []byte) {
	for _, b := range p {
		writeWord(uint32(b))
	}
}

// WriteString writes the bytes of s, in order, without allocating.
//
//go:nosplit
func WriteString(s string) {
	for i := 0; i < len(s); i++ {
		writeWord(uint32(s[i]))
	}
}

// Writer adapts the channel to io.Writer. Writes can't fail and aren't
// buffered, every byte is pushed to hardware before the next.
type Writer struct{}

func (Writer) Write(p []byte) (n int, err error) {
	WriteAll(p)
	return len(p), nil
}

// WriteString implements io.StringWriter, which keeps fmt and friends from
// copying string fragments to a byte slice first.
func (Writer) WriteString(s string) (n int, err error) {
	WriteString(s)
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (Writer) WriteByte(b byte) error {
	WriteByte(b)
	return nil
}
