package ai

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
)

const (
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-haiku-4-5-20251001"
	defaultMaxTokens      = 300
)

// ModelGenerator drives a go.jetify.com/ai language model.
type ModelGenerator struct {
	model jetapi.LanguageModel
}

var _ Generator = (*ModelGenerator)(nil)

// NewOpenAI returns a generator backed by the OpenAI SDK. endpoint may point
// at any server speaking the same API.
func NewOpenAI(apiKey, modelID, endpoint string) (*ModelGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	if modelID = strings.TrimSpace(modelID); modelID == "" {
		modelID = defaultOpenAIModel
	}
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if base := normalizeOpenAIBaseURL(endpoint); base != "" {
		opts = append(opts, openaioption.WithBaseURL(base))
	}
	client := openaiclient.NewClient(opts...)
	return &ModelGenerator{model: jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client))}, nil
}

// NewAnthropic returns a generator backed by the Anthropic SDK.
func NewAnthropic(apiKey, modelID, endpoint string) (*ModelGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("anthropic api key is empty")
	}
	if modelID = strings.TrimSpace(modelID); modelID == "" {
		modelID = defaultAnthropicModel
	}
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		anthropicoption.WithMaxRetries(0),
	}
	if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	client := anthropicclient.NewClient(opts...)
	return &ModelGenerator{model: jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client))}, nil
}

// Generate runs a single non-streaming completion.
func (g *ModelGenerator) Generate(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	opts := []jetai.GenerateOption{
		jetai.WithModel(g.model),
		jetai.WithMaxOutputTokens(maxTokens),
	}
	if req.Temperature > 0 {
		opts = append(opts, jetai.WithTemperature(req.Temperature))
	}
	resp, err := jetai.GenerateText(ctx, promptMessages(req), opts...)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	return responseText(resp)
}

func promptMessages(req Request) []jetapi.Message {
	messages := make([]jetapi.Message, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, &jetapi.SystemMessage{Content: req.System})
	}
	messages = append(messages, &jetapi.UserMessage{Content: jetapi.ContentFromText(req.Prompt)})
	return messages
}

func responseText(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.(*jetapi.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	return b.String(), nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}
	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
