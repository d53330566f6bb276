//go:build !arm && !dccnop

package dcc

// Hosts have no debug channel. Words are handed to Sink so tests can
// observe the stream, and discarded otherwise.
var Sink func(word uint32)

//go:nosplit
func writeWord(word uint32) {
	if Sink != nil {
		Sink(word)
	}
}
