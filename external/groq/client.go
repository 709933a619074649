package groq

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/gafferbot/fplgaffer/internal/platform/logging"
	"github.com/gafferbot/fplgaffer/internal/platform/resilience"
	"github.com/gafferbot/fplgaffer/internal/usecase"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

var errGroqTransient = crerr.New("groq transient failure")

// ErrNoAPIKey means the client was built without any key; AI features are
// off for the run.
var ErrNoAPIKey = crerr.New("no groq api key configured")

var thinkBlockRegex = regexp.MustCompile(`(?s)<think>.*?</think>`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	FreeAPIKey     string
	PaidAPIKey     string
	Model          string
	MaxTokens      int
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the Groq OpenAI-compatible chat-completions endpoint. It
// prefers the free-tier key and falls back to the paid key when the free
// tier is rate limited.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	freeKey        string
	paidKey        string
	model          string
	maxTokens      int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 600
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		freeKey:        strings.TrimSpace(cfg.FreeAPIKey),
		paidKey:        strings.TrimSpace(cfg.PaidAPIKey),
		model:          strings.TrimSpace(cfg.Model),
		maxTokens:      maxTokens,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends a system+user prompt pair and returns the model's reply
// with any hidden reasoning blocks stripped.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.freeKey == "" && c.paidKey == "" {
		return "", ErrNoAPIKey
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "groq circuit breaker rejected request", "state", c.breaker.State())
			return "", fmt.Errorf("%w: ai provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	key := c.freeKey
	if key == "" {
		c.logger.InfoContext(ctx, "using paid groq key, no free key configured")
		key = c.paidKey
	}

	reply, err := c.complete(ctx, key, systemPrompt, userPrompt)
	if err != nil && isRateLimited(err) && key == c.freeKey && c.paidKey != "" {
		c.logger.WarnContext(ctx, "free-tier limit hit, retrying with paid key")
		reply, err = c.complete(ctx, c.paidKey, systemPrompt, userPrompt)
	}
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errGroqTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return "", err
	}
	return stripThinkBlocks(reply), nil
}

func (c *Client) complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3,
		MaxTokens:   c.maxTokens,
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}
	_, _ = buf.Write(encoded)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", strings.NewReader(buf.String()))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: send chat request: %v", errGroqTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read chat response: %v", errGroqTransient, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: status=429 body=%s", errRateLimited, strings.TrimSpace(string(raw)))
	}
	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("%w: status=%d", errGroqTransient, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded chatResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("groq error code=%s: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat response carried no choices")
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

var errRateLimited = crerr.New("groq rate limited")

func isRateLimited(err error) bool {
	if crerr.Is(err, errRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"rate_limit_exceeded", "request too large", "tpm", "rpm"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func stripThinkBlocks(reply string) string {
	return strings.TrimSpace(thinkBlockRegex.ReplaceAllString(reply, ""))
}
