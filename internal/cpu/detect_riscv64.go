//go:build riscv64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on riscv64 systems.
//
// The vector extension is optional on RISC-V; absence of the flag simply
// means generic implementations are selected.
func detectFeaturesImpl() Features {
	return Features{
		HasRVV:       cpu.RISCV64.HasV,
		Architecture: runtime.GOARCH,
	}
}
