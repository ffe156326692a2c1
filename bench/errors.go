package bench

import "errors"

var (
	// ErrInvalidWorkload is returned for workloads that fail validation.
	ErrInvalidWorkload = errors.New("invalid workload")

	// ErrFingerprintMismatch is returned by CrossCheck when two strategies
	// disagree about the outcome of the same workload.
	ErrFingerprintMismatch = errors.New("fingerprint mismatch")

	// ErrInvalidContainer is returned when a container fails its own Validate.
	ErrInvalidContainer = errors.New("container invariant violated")
)
