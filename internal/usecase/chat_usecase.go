package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Chat reply sources reported to the metrics recorder.
const (
	ChatSourceModel   = "model"
	ChatSourceKeyword = "keyword"
	ChatSourceEmpty   = "empty"
)

const EmptyChatReply = "Please ask a question about our cleaning services!"

// BusinessInfo is the contact data quoted in canned replies.
type BusinessInfo struct {
	Name  string
	Phone string
	Email string
}

// ChatRecorder receives the source of every chat reply.
type ChatRecorder interface {
	RecordChatResponse(source string)
}

type IChatUseCase interface {
	Respond(ctx context.Context, message string) string
}

type ChatUseCase struct {
	model    interfaces.IChatModel
	business BusinessInfo
	timeout  time.Duration
	recorder ChatRecorder
}

var _ IChatUseCase = (*ChatUseCase)(nil)

// NewChatUseCase builds the assistant. A nil model means keyword replies only.
func NewChatUseCase(model interfaces.IChatModel, business BusinessInfo, timeout time.Duration, recorder ChatRecorder) *ChatUseCase {
	return &ChatUseCase{model: model, business: business, timeout: timeout, recorder: recorder}
}

// Respond never fails: model errors and timeouts fall back to keyword replies.
func (u *ChatUseCase) Respond(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		u.record(ChatSourceEmpty)
		return EmptyChatReply
	}

	if u.model != nil {
		reply, err := u.ask(ctx, message)
		if err == nil {
			u.record(ChatSourceModel)
			return reply
		}
		logger.FromContext(ctx).Warn("[chat][usecase] model failed, using keyword reply", zap.Error(err))
	}
	u.record(ChatSourceKeyword)
	return u.KeywordReply(message)
}

func (u *ChatUseCase) ask(ctx context.Context, message string) (string, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}
	reply, err := u.model.Generate(ctx, u.prompt(message))
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("empty model reply")
	}
	return reply, nil
}

func (u *ChatUseCase) prompt(message string) string {
	return fmt.Sprintf(`You are a helpful assistant for %s.
Answer this question about cleaning services: %s

Keep your response brief, friendly, and focused on cleaning services.
If asked about scheduling: call %s.
If asked about areas: we serve the Greater Boston area.`, u.business.Name, message, u.business.Phone)
}

type chatBucket struct {
	keywords []string
	reply    func(b BusinessInfo) string
}

// Checked in order; the first bucket with a matching keyword wins.
var chatBuckets = []chatBucket{
	{
		keywords: []string{"service", "offer", "clean", "what do"},
		reply: func(BusinessInfo) string {
			return "We offer professional cleaning for homes, offices, medical facilities, and restaurants. Each service includes thorough cleaning, sanitization, and attention to detail. Would you like a free quote?"
		},
	},
	{
		keywords: []string{"price", "cost", "much", "rate", "quote"},
		reply: func(b BusinessInfo) string {
			return fmt.Sprintf("Pricing depends on property type, size and frequency. Offices start at $0.05/sqft and medical facilities at $0.08/sqft, with discounts for recurring service. Get an instant quote online or call %s for a custom estimate!", b.Phone)
		},
	},
	{
		keywords: []string{"area", "location", "where", "serve", "boston"},
		reply: func(BusinessInfo) string {
			return "We proudly serve Greater Boston including Boston, Cambridge, Quincy, Newton, Brookline, Somerville, and surrounding areas within 15 miles. Call us to confirm service to your location!"
		},
	},
	{
		keywords: []string{"schedule", "book", "appointment", "when", "available"},
		reply: func(b BusinessInfo) string {
			return fmt.Sprintf("We're available Mon-Sat 8AM-6PM. You can schedule service by calling %s or by requesting a quote online. Same-day service may be available!", b.Phone)
		},
	},
	{
		keywords: []string{"often", "frequency", "weekly", "monthly"},
		reply: func(BusinessInfo) string {
			return "We offer flexible scheduling: daily (save 25%), weekly (save 20%), bi-weekly (save 15%), monthly (save 10%), quarterly (save 5%), or a one-time clean. Regular service gives you the best value!"
		},
	},
	{
		keywords: []string{"contact", "call", "phone", "email"},
		reply: func(b BusinessInfo) string {
			return fmt.Sprintf("Contact us by phone at %s (Mon-Sat 8AM-6PM) or by email at %s. We respond quickly to all inquiries!", b.Phone, b.Email)
		},
	},
	{
		keywords: []string{"guarantee", "satisfaction", "quality", "insured"},
		reply: func(BusinessInfo) string {
			return "We're fully licensed and insured with a 100% satisfaction guarantee! If you're not happy with any area we've cleaned, we'll re-clean it for free."
		},
	},
	{
		keywords: []string{"long", "time", "duration", "hours"},
		reply: func(BusinessInfo) string {
			return "Typical cleaning times: small offices take 2-3 hours, larger facilities are planned at about 3,000 sqft per hour of labor. We work efficiently while maintaining high quality standards!"
		},
	},
	{
		keywords: []string{"supply", "product", "chemical", "eco", "green"},
		reply: func(BusinessInfo) string {
			return "We use eco-friendly, non-toxic cleaning products that are safe for children and pets, and we bring all supplies needed. If you have specific product preferences, just let us know!"
		},
	},
}

// KeywordReply answers from the canned buckets without calling the model.
func (u *ChatUseCase) KeywordReply(message string) string {
	msg := strings.ToLower(message)
	for _, b := range chatBuckets {
		for _, k := range b.keywords {
			if strings.Contains(msg, k) {
				return b.reply(u.business)
			}
		}
	}
	return fmt.Sprintf("I can help you with questions about our cleaning services, pricing, scheduling, or service areas. You can also call us at %s or use the quote calculator for instant pricing!", u.business.Phone)
}

func (u *ChatUseCase) record(source string) {
	if u.recorder != nil {
		u.recorder.RecordChatResponse(source)
	}
}
