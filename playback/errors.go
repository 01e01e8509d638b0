// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrNoClip reports a PlayNote call without a playable clip.
	ErrNoClip = errors.New("no clip to play")
)
