package deepseek

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"legalmind/app/config"
	"legalmind/app/domain"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

//go:embed system_prompt.txt
var systemPrompt string

const (
	analyzeTimeout = 40 * time.Second
	temperature    = 0.15
	maxTokens      = 600
	topP           = 0.9
)

// Client classifies case descriptions via the DeepSeek chat-completion API.
// Analyze never fails outward: every failure mode degrades to a usable
// analysis with a distinguishing summary.
type Client struct {
	cfg     *config.Config
	client  *openai.Client
	timeout time.Duration
}

func New(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	c := &Client{
		cfg:     cfg,
		timeout: analyzeTimeout,
	}

	if cfg.DeepSeek.Token == "" {
		slog.Warn("DeepSeek token is not configured, analysis will run degraded")
		return c, nil
	}

	clientConfig := openai.DefaultConfig(cfg.DeepSeek.Token)
	clientConfig.BaseURL = cfg.DeepSeek.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: analyzeTimeout,
	}
	c.client = openai.NewClientWithConfig(clientConfig)

	return c, nil
}

// Analyze classifies the user's problem description. Collected followup
// answers, if any, are appended to the prompt in the order given.
func (c *Client) Analyze(ctx context.Context, userText string, slots []Slot) *domain.Analysis {
	if c.client == nil {
		return degradedAnalysis()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.cfg.DeepSeek.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: composePrompt(userText, slots),
				},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
			TopP:        topP,
		},
	)
	if err != nil {
		return c.classifyFailure(err)
	}

	if len(resp.Choices) == 0 {
		slog.Error("DeepSeek returned no choices")
		return fallbackAnalysis(summaryUnexpected)
	}

	analysis, err := ExtractAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		slog.Error("Failed to extract analysis from model output",
			"error", err,
			"content", resp.Choices[0].Message.Content,
		)
		return fallbackAnalysis(summaryParseError)
	}

	return analysis
}

func (c *Client) classifyFailure(err error) *domain.Analysis {
	switch {
	case isTimeout(err):
		slog.Error("DeepSeek request timed out", "error", err)
		return fallbackAnalysis(summaryTimeout)

	case isTransportError(err):
		slog.Error("DeepSeek request failed", "error", err)
		return fallbackAnalysis(summaryConnectionError)

	default:
		slog.Error("Unexpected DeepSeek failure", "error", fmt.Sprintf("%T: %v", err, err))
		return fallbackAnalysis(summaryUnexpected)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isTransportError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return true
	}

	var reqErr *openai.RequestError
	return errors.As(err, &reqErr)
}

func composePrompt(userText string, slots []Slot) string {
	if len(slots) == 0 {
		return userText
	}

	var builder strings.Builder
	builder.WriteString(userText)
	builder.WriteString("\n\nמידע נוסף שנאסף:\n")

	for _, slot := range slots {
		builder.WriteString(fmt.Sprintf("- %s: %s\n", SlotLabel(slot.Name), slot.Value))
	}

	return builder.String()
}
