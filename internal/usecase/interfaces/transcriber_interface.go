package interfaces

import "context"

// ITranscriber turns a dictated audio recording into text.
type ITranscriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}
