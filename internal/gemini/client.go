package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linemk/siya-shop/internal/domain/models"
)

var ErrEmptyResponse = errors.New("empty response from model")

// Client is a thin REST client for the Generative Language API. Calls are
// single-shot and stateless; the caller decides whether to retry.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	suggestModel string
	imageModel   string
}

func NewClient(baseURL, apiKey, suggestModel, imageModel string, timeout time.Duration) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		suggestModel: suggestModel,
		imageModel:   imageModel,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType   string          `json:"responseMimeType,omitempty"`
	ResponseSchema     json.RawMessage `json:"responseSchema,omitempty"`
	ResponseModalities []string        `json:"responseModalities,omitempty"`
	Temperature        *float64        `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// suggestionSchema constrains the suggestion call to the structured JSON
// the customizer renders: a Google-Fonts-compatible family, a short
// concept description and a 3-5 entry hex palette.
var suggestionSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "fontFamily": {"type": "STRING", "description": "A font family name available on Google Fonts, e.g. 'Montserrat' or 'Lobster'."},
    "description": {"type": "STRING", "description": "A brief, evocative description of the design concept."},
    "colorPalette": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "3-5 hex color codes that complement the design."}
  },
  "required": ["fontFamily", "description", "colorPalette"]
}`)

// SuggestDesign asks the model for a nameplate design concept for the
// given name and style description.
func (c *Client) SuggestDesign(ctx context.Context, name, stylePrompt string) (*models.DesignSuggestion, error) {
	prompt := fmt.Sprintf(
		"You are an expert designer specializing in personalized nameplates. "+
			"A customer wants a nameplate with the name %q. Their desired style is %q. "+
			"Generate a creative and appealing design concept as JSON matching the provided schema. "+
			"Suggest a font that is available on Google Fonts and make the description exciting for the customer.",
		name, stylePrompt,
	)

	temperature := 0.8
	resp, err := c.generate(ctx, c.suggestModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   suggestionSchema,
			Temperature:      &temperature,
		},
	})
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var suggestion models.DesignSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &suggestion); err != nil {
		return nil, fmt.Errorf("malformed suggestion payload: %w", err)
	}
	if suggestion.FontFamily == "" || suggestion.Description == "" || len(suggestion.ColorPalette) == 0 {
		return nil, fmt.Errorf("incomplete suggestion payload")
	}
	return &suggestion, nil
}

// GenerateImage asks the image model for a product photograph and returns
// the base64 payload of the first inline image part.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	fullPrompt := fmt.Sprintf(
		"Generate a high-quality, professional product photograph of a handmade craft item "+
			"based on the following description: %q. Use a clean, minimalist background "+
			"(light gray, beige or off-white) and soft natural lighting.",
		prompt,
	)

	resp, err := c.generate(ctx, c.imageModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: fullPrompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	})
	if err != nil {
		return "", err
	}

	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, nil
			}
		}
	}
	return "", ErrEmptyResponse
}

func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func firstText(resp *generateResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
