package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Fatimadayan/Sooqbot/logger"
)

// chatCompleter is the slice of the OpenAI client the generator uses.
// Narrowed to an interface so tests can substitute a fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// OpenAIGenerator drafts products via a single chat-completion call per
// batch, optionally followed by one image call per draft.
type OpenAIGenerator struct {
	client        chatCompleter
	model         string
	imagesEnabled bool
}

func NewOpenAIGenerator(apiKey, model string, imagesEnabled bool) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:        openai.NewClient(apiKey),
		model:         model,
		imagesEnabled: imagesEnabled,
	}
}

// draftPayload is the JSON document the model is instructed to return.
type draftPayload struct {
	Products []draftItem `json:"products"`
}

type draftItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // currency units, converted to cents below
}

func buildPrompt(req GenerateRequest) string {
	return fmt.Sprintf(
		`Generate %d realistic e-commerce products for the category %q.
Unit prices must be between %.2f and %.2f.
Respond with a single JSON object of the shape
{"products":[{"name":"...","description":"...","price":12.50}]}
with exactly %d entries and no other text.`,
		req.Count, req.Category,
		float64(req.MinPriceCents)/100, float64(req.MaxPriceCents)/100,
		req.Count,
	)
}

func (g *OpenAIGenerator) GenerateProducts(ctx context.Context, req GenerateRequest) ([]ProductDraft, error) {
	if req.Count <= 0 {
		return nil, &GenerationError{Stage: "request", Err: errors.New("count must be positive")}
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You write concise, realistic product catalog entries and reply with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return nil, &GenerationError{Stage: "response", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &GenerationError{Stage: "response", Err: errors.New("empty completion")}
	}

	drafts, err := parseDrafts(resp.Choices[0].Message.Content, req)
	if err != nil {
		return nil, &GenerationError{Stage: "parse", Err: err}
	}

	if g.imagesEnabled {
		g.attachImages(ctx, drafts)
	}
	return drafts, nil
}

// parseDrafts decodes the model output into drafts, clamping prices into
// the requested range. Models occasionally wrap JSON in markdown fences
// even when asked not to, so fences are stripped first.
func parseDrafts(content string, req GenerateRequest) ([]ProductDraft, error) {
	content = stripFences(content)

	var payload draftPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal completion: %w", err)
	}
	if len(payload.Products) == 0 {
		return nil, errors.New("completion contained no products")
	}
	items := payload.Products
	if len(items) > req.Count {
		items = items[:req.Count]
	}

	drafts := make([]ProductDraft, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, errors.New("completion contained a product without a name")
		}
		// Round, don't truncate: 19.99 is not representable in float64
		// and truncation would yield 1998.
		cents := int64(math.Round(it.Price * 100))
		if cents < req.MinPriceCents {
			cents = req.MinPriceCents
		}
		if cents > req.MaxPriceCents {
			cents = req.MaxPriceCents
		}
		drafts = append(drafts, ProductDraft{
			Name:        strings.TrimSpace(it.Name),
			Description: strings.TrimSpace(it.Description),
			Category:    req.Category,
			PriceCents:  cents,
		})
	}
	return drafts, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// attachImages requests one image per draft. Image failures degrade to an
// empty image_url; they never fail the batch.
func (g *OpenAIGenerator) attachImages(ctx context.Context, drafts []ProductDraft) {
	for i := range drafts {
		resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
			Prompt: fmt.Sprintf("Product photo on a plain background: %s. %s", drafts[i].Name, drafts[i].Description),
			Model:  openai.CreateImageModelDallE3,
			N:      1,
			Size:   openai.CreateImageSize1024x1024,
		})
		if err != nil || len(resp.Data) == 0 {
			logger.Log.Warn("image generation failed, continuing without image",
				zap.String("product", drafts[i].Name), zap.Error(err))
			continue
		}
		drafts[i].ImageURL = resp.Data[0].URL
	}
}
