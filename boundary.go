package algomodwt

import "github.com/cwbudde/algo-modwt/internal/modwt"

// BoundaryMode selects how convolution treats samples beyond the signal
// edges. The canonical definition is in internal/modwt.
type BoundaryMode = modwt.BoundaryMode

// Supported boundary modes. Periodic is the only mode with exact
// reconstruction at the signal boundaries; ZeroPadding and Symmetric
// introduce a bounded, documented edge error on reconstruction and are
// accepted only by the multi-level and streaming layers.
const (
	Periodic    = modwt.Periodic
	ZeroPadding = modwt.ZeroPadding
	Symmetric   = modwt.Symmetric
)
