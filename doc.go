// Package algomodwt computes the maximal-overlap discrete wavelet transform
// (MODWT), a shift-invariant, non-decimated wavelet decomposition defined for
// signals of any length.
//
// The package provides four execution surfaces over the same kernel:
//
//   - Transform: the single-level periodized forward/inverse kernel.
//   - MultiLevelTransform: the cascade decomposition with per-level filter
//     upsampling, overflow-safe level bounds and band reconstruction.
//   - StreamingTransform: unbounded sample sequences through a fixed sliding
//     window with overlap carry and subscriber delivery.
//   - BatchEngine: many independent signals at once in a structure-of-arrays
//     layout with a vectorization-friendly convolution path, a bounded
//     prepared-kernel cache and optional worker-pool parallelism.
//
// Only the Periodic boundary mode guarantees exact reconstruction; the other
// modes trade boundary fidelity for reduced wraparound artifacts and are
// accepted by the multi-level and streaming layers.
package algomodwt
