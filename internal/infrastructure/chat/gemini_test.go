package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if t, ok := parts[0].(genai.Text); ok {
			f.prompt = string(t)
		}
	}
	return f.resp, f.err
}

func textResponse(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}}}
}

func TestGeminiModel_Generate(t *testing.T) {
	t.Run("joins text parts", func(t *testing.T) {
		gen := &fakeGenerator{resp: textResponse(genai.Text("We clean "), genai.Text("offices. "))}
		m := &GeminiModel{generator: gen, logger: zap.NewNop()}

		got, err := m.Generate(context.Background(), "what do you clean?")
		if err != nil || got != "We clean offices." {
			t.Fatalf("unexpected reply %q err=%v", got, err)
		}
		if gen.prompt != "what do you clean?" {
			t.Fatalf("prompt not forwarded: %q", gen.prompt)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		m := &GeminiModel{generator: &fakeGenerator{resp: &genai.GenerateContentResponse{}}, logger: zap.NewNop()}
		if _, err := m.Generate(context.Background(), "hi"); !errors.Is(err, ErrEmptyReply) {
			t.Fatalf("expected ErrEmptyReply, got %v", err)
		}
	})

	t.Run("api error", func(t *testing.T) {
		m := &GeminiModel{generator: &fakeGenerator{err: errors.New("429")}, logger: zap.NewNop()}
		if _, err := m.Generate(context.Background(), "hi"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewGeminiModel_MissingKey(t *testing.T) {
	if _, err := NewGeminiModel(context.Background(), " ", "gemini-1.5-flash", zap.NewNop()); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGeminiModel_CloseNil(t *testing.T) {
	var m *GeminiModel
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
