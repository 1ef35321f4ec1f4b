package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var (
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyReply    = errors.New("model returned no text")
)

const systemPrompt = "You answer questions for a commercial cleaning company's website visitors. " +
	"Be brief and friendly, and steer the conversation back to cleaning services."

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiModel implements interfaces.IChatModel on top of the Gemini API.
type GeminiModel struct {
	client    *genai.Client
	generator contentGenerator
	logger    *zap.Logger
}

var _ interfaces.IChatModel = (*GeminiModel)(nil)

func NewGeminiModel(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiModel, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(300)

	logger.Info("[chat][gemini] client initialized", zap.String("model", modelName))
	return &GeminiModel{client: client, generator: model, logger: logger}, nil
}

func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.generator.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func (g *GeminiModel) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}
