package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only PCM WAV data supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
)
