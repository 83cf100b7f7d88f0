package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"collabhub/internal/config"
	"collabhub/internal/model"
)

// DiscoveryCount is how many profiles discovery asks for.
const DiscoveryCount = 5

// HTTPClient talks to an OpenAI-compatible chat completions endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

func NewHTTPClient(cfg config.LLMConfig) *HTTPClient {
	rps, burst := cfg.RPS, cfg.Burst
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &HTTPClient{
		baseURL: base,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// --- light http helpers (decoupled for testability) ---

var httpNewRequest = defaultNewRequest
var httpDo = defaultDo

func defaultNewRequest(ctx context.Context, url string, body []byte) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
}

func defaultDo(req *http.Request) (*http.Response, error) {
	return http.DefaultClient.Do(req)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.8,
	}
	if jsonMode {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := httpNewRequest(ctx, c.baseURL+"/chat/completions", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpDo(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("llm status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("llm returned no content")
	}
	return out.Choices[0].Message.Content, nil
}

func discoveryPrompt(description string) string {
	return fmt.Sprintf(`Based on the following description, generate a list of %d fictional influencer profiles that are a good match.
Description: %q
Reply with a JSON object {"influencers": [...]}. Each profile has: id (a UUID), name, handle (without @), platforms (array of {"name", "url"} where name is one of YouTube, Instagram, TikTok, X, Facebook and url is "#"), followers (integer), avatarUrl (a picsum.photos URL), categories (2-3 common influencer niches), engagementRate (percentage, e.g. 2.5), country, email.`, DiscoveryCount, description)
}

// FindInfluencers asks the model for profiles matching description.
func (c *HTTPClient) FindInfluencers(ctx context.Context, description string) ([]model.Influencer, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	text, err := c.complete(ctx, discoveryPrompt(description), true)
	if err != nil {
		return nil, fmt.Errorf("find influencers: %w", err)
	}
	infs, err := parseInfluencers(text)
	if err != nil {
		return nil, fmt.Errorf("find influencers: %w", err)
	}
	return infs, nil
}

// parseInfluencers accepts {"influencers": [...]} or a bare array.
func parseInfluencers(text string) ([]model.Influencer, error) {
	text = strings.TrimSpace(text)
	var infs []model.Influencer
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &infs); err != nil {
			return nil, err
		}
	} else {
		var wrapped struct {
			Influencers []model.Influencer `json:"influencers"`
		}
		if err := json.Unmarshal([]byte(text), &wrapped); err != nil {
			return nil, err
		}
		infs = wrapped.Influencers
	}
	for i := range infs {
		infs[i] = normalize(infs[i])
	}
	return infs, nil
}

// normalize gives generated records a stable id and a non-nil platform list
// restricted to the known platforms.
func normalize(inf model.Influencer) model.Influencer {
	if strings.TrimSpace(inf.ID) == "" {
		inf.ID = uuid.NewString()
	}
	inf.Handle = strings.TrimPrefix(inf.Handle, "@")
	platforms := make([]model.Platform, 0, len(inf.Platforms))
	for _, p := range inf.Platforms {
		name, ok := model.ParsePlatform(string(p.Name))
		if !ok {
			continue
		}
		platforms = append(platforms, model.Platform{Name: name, URL: p.URL})
	}
	inf.Platforms = platforms
	if inf.Categories == nil {
		inf.Categories = []string{}
	}
	return inf
}

// Summarize writes a short collaboration outlook for inf.
func (c *HTTPClient) Summarize(ctx context.Context, inf model.Influencer) (string, error) {
	prompt := fmt.Sprintf("Write a short collaboration outlook (3-4 sentences) for the influencer %s (@%s), %s followers, %.1f%% engagement, categories: %s. Mention likely negotiation points.",
		inf.Name, inf.Handle, model.FormatCount(inf.Followers), inf.EngagementRate, strings.Join(inf.Categories, ", "))
	text, err := c.complete(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// CampaignInsights analyses the performance rows of one campaign.
func (c *HTTPClient) CampaignInsights(ctx context.Context, campaignName string, rows []model.CampaignInfluencer) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyse the performance of the influencer campaign %q and give one recommendation. Rows:\n", campaignName)
	for _, r := range rows {
		fmt.Fprintf(&b, "- %s: engagement %.1f%%, content %s, payment %s, deliverables %d\n",
			r.Influencer.Name, r.Influencer.EngagementRate, r.Detail.ContentDeliveryStatus, r.Detail.PaymentStatus, len(r.Detail.Deliverables))
	}
	text, err := c.complete(ctx, b.String(), false)
	if err != nil {
		return "", fmt.Errorf("campaign insights: %w", err)
	}
	return strings.TrimSpace(text), nil
}
