//go:build arm && noos

package panicdcc

import (
	_ "unsafe" // for linkname

	dcc "github.com/japaric/arm-dcc"
)

// Write makes the channel the runtime's default writer. Is slow, one
// handshake per byte, but needs no memory and works from the first
// instruction after rt0, which makes it a reliable last resort for panics
// and early boot prints.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname Write runtime.defaultWrite
func Write(fd int, p []byte) int {
	dcc.WriteAll(p)
	return len(p)
}
