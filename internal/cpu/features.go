// Package cpu reports the CPU capabilities relevant to convolution kernel
// selection in the batch transform path.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to vectorized convolution.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// VectorLanes returns the number of float64 lanes the widest available
// vector unit can process per instruction. The batch engine uses this to
// choose the unroll factor of the structure-of-arrays inner loop.
func (f Features) VectorLanes() int {
	switch {
	case f.HasAVX512:
		return 8
	case f.HasAVX2:
		return 4
	case f.HasSSE2, f.HasNEON:
		return 2
	default:
		return 1
	}
}
