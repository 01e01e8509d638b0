// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrCorruptFrame marks a recoverable frame-level decode failure.
	// Decoders wrap it to signal that the current frame should be skipped
	// and reading may continue; Capture does exactly that.
	ErrCorruptFrame = errors.New("corrupt audio frame")

	// ErrNoFrames reports that a capture finished without a single
	// successfully decoded frame.
	ErrNoFrames = errors.New("no audio frames decoded")

	// ErrInvalidFrameCount reports a non-positive capture target.
	ErrInvalidFrameCount = errors.New("frame count must be positive")
)
