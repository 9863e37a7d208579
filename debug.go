package lattice

import (
	"fmt"
	"os"
)

// globalDebug enables stderr diagnostics for suspicious-but-legal usage.
// Off by default; never changes accessor behavior.
var globalDebug bool

// SetDebug toggles debug diagnostics. When enabled, tolerant writes that hit
// an unregistered entity (and are therefore dropped) log a warning to stderr.
// Dropped writes are part of the contract, but during development a burst of
// them usually means a node was never registered.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugWarnMissedWrite logs a dropped tolerant write. Called only from the
// miss branch of tolerant setters.
func debugWarnMissedWrite(op string, entity Entity) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[lattice] warning: %s dropped for unregistered entity %v\n", op, entity)
}
