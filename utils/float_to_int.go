package utils

// Float32ToInt16 converts a normalized sample to signed 16-bit PCM.
// Input outside [-1, 1] is clamped first. The positive scale is 32767
// so that +1.0 maps to the largest int16 instead of overflowing.
func Float32ToInt16(x float32) int16 {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return int16(x * 32767.0)
}
