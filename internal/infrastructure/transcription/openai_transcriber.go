package transcription

import (
	"bytes"
	"chantierplus/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// SimulatedText is returned by the mock transcriber.
const SimulatedText = "Ceci est une transcription simulée car la clé API OpenAI est manquante. Installer une prise électrique supplémentaire dans le salon."

const defaultModel = "whisper-1"

var ErrEmptyTranscription = errors.New("transcription returned no text")

// OpenAITranscriber sends recordings to the OpenAI audio transcription API.
type OpenAITranscriber struct {
	client openai.Client
	model  openai.AudioModel
}

var _ interfaces.ITranscriber = (*OpenAITranscriber)(nil)

func NewOpenAITranscriber(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAITranscriber {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	reqOpts = append(reqOpts, opts...)
	if model == "" {
		model = defaultModel
	}
	return &OpenAITranscriber{
		client: openai.NewClient(reqOpts...),
		model:  openai.AudioModel(model),
	}
}

func (t *OpenAITranscriber) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if filename == "" {
		filename = "recording.webm"
	}
	res, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(audio), filename, audioContentType(filename)),
		Model: t.model,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return "", ErrEmptyTranscription
	}
	log.Printf("[avenant][transcription] done model=%s text_len=%d", t.model, len(text))
	return text, nil
}

func audioContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3", ".mpeg", ".mpga":
		return "audio/mpeg"
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".ogg", ".oga":
		return "audio/ogg"
	default:
		return "audio/webm"
	}
}

// MockTranscriber answers with SimulatedText, for environments without an API key.
type MockTranscriber struct{}

var _ interfaces.ITranscriber = MockTranscriber{}

func (MockTranscriber) Transcribe(_ context.Context, filename string, audio []byte) (string, error) {
	log.Printf("[avenant][transcription] mock mode filename=%q audio_len=%d", filename, len(audio))
	return SimulatedText, nil
}
