//go:build arm && dccextern && !dccnop

package dcc

import _ "unsafe" // for linkname

// writeWord delegates to a separately assembled __dcc_write routine with
// the same blocking contract as the default backend. Link the routine in
// when the toolchain can't assemble the CP14 access sequence itself.
//
//go:nosplit
//go:linkname writeWord __dcc_write
func writeWord(word uint32)
