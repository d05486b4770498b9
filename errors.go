package algomodwt

import "errors"

// Sentinel errors returned by transform operations. Call sites wrap these
// with the offending value and the limit it violated, so callers can both
// match with errors.Is and read the concrete numbers from the message.
var (
	// ErrEmptySignal is returned when a nil or zero-length signal is passed
	// to a transform entry point.
	ErrEmptySignal = errors.New("algomodwt: nil or empty signal")

	// ErrInvalidSignal is returned when a signal contains NaN or infinite
	// samples. Validation runs before any computation.
	ErrInvalidSignal = errors.New("algomodwt: signal contains NaN or Inf")

	// ErrNilWavelet is returned when a constructor receives a nil wavelet.
	ErrNilWavelet = errors.New("algomodwt: nil wavelet")

	// ErrWaveletFilter is returned when wavelet filter coefficients fail
	// the orthonormality checks.
	ErrWaveletFilter = errors.New("algomodwt: invalid wavelet filter")

	// ErrBoundaryMode is returned when a boundary mode is unknown, or not
	// supported by the requested transform variant.
	ErrBoundaryMode = errors.New("algomodwt: unsupported boundary mode")

	// ErrLevelRange is returned when a decomposition level is outside
	// [1, MaxLevels] for the given signal.
	ErrLevelRange = errors.New("algomodwt: decomposition level out of range")

	// ErrBufferSize is returned when a streaming buffer size is
	// non-positive, smaller than the filter, overflow-inducing, or past
	// the memory ceiling.
	ErrBufferSize = errors.New("algomodwt: invalid buffer size")

	// ErrLengthMismatch is returned when batch signals have differing
	// lengths, or a result does not match the expected dimensions.
	ErrLengthMismatch = errors.New("algomodwt: length mismatch")

	// ErrNilResult is returned when an inverse or reconstruction receives
	// a nil result.
	ErrNilResult = errors.New("algomodwt: nil result")

	// ErrNilListener is returned when Subscribe receives a nil listener.
	ErrNilListener = errors.New("algomodwt: nil listener")

	// ErrConfig is returned when an engine configuration option is invalid.
	ErrConfig = errors.New("algomodwt: invalid engine configuration")

	// ErrClosed is returned when an operation is attempted on a closed
	// engine or streaming transform.
	ErrClosed = errors.New("algomodwt: closed")
)
