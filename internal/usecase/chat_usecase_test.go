package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	mock_interfaces "github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type sourceRecorder struct{ sources []string }

func (r *sourceRecorder) RecordChatResponse(source string) { r.sources = append(r.sources, source) }

var testBusiness = BusinessInfo{Name: "Sparkle Commercial Cleaning", Phone: "(617) 555-0199", Email: "hello@sparkleclean.example"}

func TestChatUseCase_KeywordReply(t *testing.T) {
	uc := NewChatUseCase(nil, testBusiness, time.Second, nil)

	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"services", "What do you offer?", "We offer professional cleaning"},
		{"pricing", "How MUCH does it cost", "Pricing depends on property type"},
		{"area", "Do you serve Boston?", "Greater Boston"},
		{"scheduling", "can I book an appointment", "Mon-Sat 8AM-6PM"},
		{"frequency", "weekly visits?", "flexible scheduling"},
		{"contact", "phone number please", "hello@sparkleclean.example"},
		{"guarantee", "are you insured", "satisfaction guarantee"},
		{"duration", "how long does it take", "Typical cleaning times"},
		{"supplies", "do you use eco products", "eco-friendly"},
		{"default", "hello there", "I can help you with questions"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uc.KeywordReply(tc.message)
			if !strings.Contains(got, tc.want) {
				t.Fatalf("reply %q does not contain %q", got, tc.want)
			}
		})
	}

	t.Run("earlier bucket wins", func(t *testing.T) {
		// "clean" (services) is checked before "price" (pricing).
		got := uc.KeywordReply("price of a deep clean")
		if !strings.Contains(got, "We offer professional cleaning") {
			t.Fatalf("expected services reply, got %q", got)
		}
	})
}

func TestChatUseCase_Respond(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		rec := &sourceRecorder{}
		uc := NewChatUseCase(nil, testBusiness, time.Second, rec)
		if got := uc.Respond(context.Background(), "   "); got != EmptyChatReply {
			t.Fatalf("unexpected reply %q", got)
		}
		assert.Equal(t, []string{ChatSourceEmpty}, rec.sources)
	})

	t.Run("model answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mock_interfaces.NewMockIChatModel(ctrl)
		rec := &sourceRecorder{}
		uc := NewChatUseCase(model, testBusiness, time.Second, rec)

		model.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, prompt string) (string, error) {
				if _, ok := ctx.Deadline(); !ok {
					t.Fatalf("expected a deadline on the model call")
				}
				if !strings.Contains(prompt, "Sparkle Commercial Cleaning") || !strings.Contains(prompt, "do you clean gyms?") {
					t.Fatalf("unexpected prompt %q", prompt)
				}
				return "  Yes, we clean gyms.  ", nil
			},
		)

		assert.Equal(t, "Yes, we clean gyms.", uc.Respond(context.Background(), "do you clean gyms?"))
		assert.Equal(t, []string{ChatSourceModel}, rec.sources)
	})

	t.Run("model failure falls back to keywords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mock_interfaces.NewMockIChatModel(ctrl)
		rec := &sourceRecorder{}
		uc := NewChatUseCase(model, testBusiness, time.Second, rec)

		model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		got := uc.Respond(context.Background(), "what is the price?")
		if !strings.Contains(got, "Pricing depends on property type") {
			t.Fatalf("expected pricing fallback, got %q", got)
		}
		assert.Equal(t, []string{ChatSourceKeyword}, rec.sources)
	})

	t.Run("model timeout falls back to keywords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mock_interfaces.NewMockIChatModel(ctrl)
		uc := NewChatUseCase(model, testBusiness, 10*time.Millisecond, nil)

		model.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		)

		got := uc.Respond(context.Background(), "where are you located")
		if !strings.Contains(got, "Greater Boston") {
			t.Fatalf("expected area fallback, got %q", got)
		}
	})

	t.Run("blank model answer falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mock_interfaces.NewMockIChatModel(ctrl)
		uc := NewChatUseCase(model, testBusiness, time.Second, nil)
		model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(" ", nil)

		if got := uc.Respond(context.Background(), "hi"); !strings.Contains(got, "I can help you") {
			t.Fatalf("expected default reply, got %q", got)
		}
	})
}
