// SPDX-License-Identifier: EPL-2.0

package soundbite

import "errors"

var (
	// ErrUnknownFormat reports that no registered decoder recognized the
	// file's container or codec.
	ErrUnknownFormat = errors.New("unrecognized audio format")

	// ErrMissingFormatInfo reports a source without a usable sample rate
	// or channel count.
	ErrMissingFormatInfo = errors.New("audio stream missing sample rate or channel information")

	// ErrInvalidBite reports a non-positive bite duration.
	ErrInvalidBite = errors.New("bite duration must be positive")
)
