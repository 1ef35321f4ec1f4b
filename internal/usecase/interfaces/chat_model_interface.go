package interfaces

import "context"

// IChatModel abstracts the hosted text generation model used by the chat
// assistant.
type IChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
