//go:build arm && !dccnop && !dccextern

package dcc

// DBGDSCR bit 29: DTRTX full, the debugger hasn't read the last word yet.
const dtrTxFull = 1 << 29

// writeWord busy-waits until the debugger has drained DTRTX, then stores
// word to it. The loop has no timeout: without an attached host it spins
// forever. Build with the dccnop tag if no debugger will be listening.
//
//go:nosplit
func writeWord(word uint32) {
	for dscr()&dtrTxFull != 0 {
		// wait
	}
	dtrTxStore(word)
}

// Implemented in write_arm.s.

func dscr() uint32
func dtrTxStore(word uint32)
