//go:build !((linux && cgo) || windows || darwin)

package sink

// AudioAvailable indicates whether the speaker sink is supported in this build.
const AudioAvailable = false

// NewSpeaker always fails here; callers fall back to the bell sink.
func NewSpeaker() (Device, error) {
	return nil, ErrAudioUnavailable
}
