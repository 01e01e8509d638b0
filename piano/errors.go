// SPDX-License-Identifier: EPL-2.0

package piano

import "errors"

var (
	// ErrBiteOutOfRange reports a bite duration outside
	// [MinBiteDuration, MaxBiteDuration].
	ErrBiteOutOfRange = errors.New("bite duration out of range")
)
