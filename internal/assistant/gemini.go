package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var ErrEmptyReply = errors.New("assistant returned empty reply")

// Gemini calls the generative-language REST API. Plain JSON over HTTP;
// no SDK needed.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string // tests point this at a fake server
}

func NewGemini(cfg GeminiConfig) *Gemini {
	if cfg.Model == "" {
		cfg.Model = "gemini-3-flash-preview"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	return &Gemini{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (g *Gemini) Refine(ctx context.Context, title, raw string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a professional college administrative assistant. Please refine and professionalize the following college announcement. Make it clear, concise, and helpful for students.\nTitle: %s\nContent: %s",
		title, raw,
	)

	return g.generate(ctx, prompt)
}

func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	prompt := "Please provide a one-sentence summary of this college announcement: " + text

	return g.generate(ctx, prompt)
}

// wire shapes for generateContent

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})

	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))

	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	res, err := g.client.Do(req)

	if err != nil {
		return "", err
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant status %d", res.StatusCode)
	}

	var out generateResponse

	err = json.NewDecoder(res.Body).Decode(&out)

	if err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}

	text := out.Candidates[0].Content.Parts[0].Text

	if text == "" {
		return "", ErrEmptyReply
	}

	return text, nil
}
