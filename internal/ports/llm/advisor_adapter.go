package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/brentlaster/spades/internal/ports"
)

const (
	DefaultBaseURL     = "http://localhost:11434/v1"
	DefaultModel       = "llama3.2"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

var ErrEmptyAdvice = errors.New("advisor returned no text")

// Config configures the chat-completion advisor. Any OpenAI-compatible
// endpoint works; the defaults target a local Ollama server.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
	HTTPClient  *http.Client
}

type advisorAdapter struct {
	client openai.Client
	cfg    Config
}

// NewAdvisorAdapter returns an AdvisorPort backed by a chat-completion model.
// Requests are attempted once; retries are left to the caller.
func NewAdvisorAdapter(cfg Config) ports.AdvisorPort {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.APIKey == "" {
		// Ollama ignores the key but the client insists on one.
		cfg.APIKey = "ollama"
	}
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &advisorAdapter{client: openai.NewClient(opts...), cfg: cfg}
}

func (a *advisorAdapter) Advise(ctx context.Context, snap ports.Snapshot) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(a.cfg.Model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(Prompt(snap))},
		Temperature: openai.Float(a.cfg.Temperature),
		MaxTokens:   openai.Int(a.cfg.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyAdvice
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyAdvice
	}
	return text, nil
}

// Prompt builds the coaching request for a snapshot.
func Prompt(snap ports.Snapshot) string {
	var b strings.Builder
	b.WriteString("You are a friendly Spades card game coach. Give brief, helpful advice (2-3 sentences max).\n\n")
	b.WriteString("Game situation:\n")
	fmt.Fprintf(&b, "- Phase: %s\n", snap.Phase)
	fmt.Fprintf(&b, "- Your hand: %s\n", snap.HandString())
	fmt.Fprintf(&b, "- Current trick: %s\n", snap.TrickString())
	fmt.Fprintf(&b, "- Your bid: %s\n", snap.BidString())
	fmt.Fprintf(&b, "- Tricks won so far: %d\n", snap.TricksWon)
	fmt.Fprintf(&b, "- Team score: %d\n", snap.TeamScore)
	fmt.Fprintf(&b, "- Opponent score: %d\n\n", snap.OpponentScore)
	b.WriteString("Give a short, specific tip for this situation. Be encouraging and educational.")
	return b.String()
}
