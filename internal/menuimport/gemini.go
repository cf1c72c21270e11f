package menuimport

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chedan888/BBQ/internal/menu"
)

// The collaborator is an external network service; cap the round trip.
const requestTimeout = 30 * time.Second

type GeminiClient struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// menuSchema constrains the model output to the MenuData shape.
var menuSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"categories": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		},
		"items": map[string]any{
			"type": "ARRAY",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"id":       map[string]any{"type": "STRING"},
					"name":     map[string]any{"type": "STRING"},
					"price":    map[string]any{"type": "NUMBER"},
					"category": map[string]any{"type": "STRING"},
				},
			},
		},
	},
}

// Extract sends the image to Gemini and decodes the structured menu
// it returns. Any failure leaves the caller's catalog untouched.
func (g *GeminiClient) Extract(ctx context.Context, image []byte, mimeType string) (menu.MenuData, error) {
	if g.apiKey == "" {
		return menu.MenuData{}, errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return menu.MenuData{}, errors.New("missing GEMINI_MODEL")
	}
	if len(image) == 0 {
		return menu.MenuData{}, errors.New("empty image")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": BuildExtractionPrompt()},
					{
						"inlineData": map[string]string{
							"mimeType": mimeType,
							"data":     base64.StdEncoding.EncodeToString(image),
						},
					},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":      0.2,
			"maxOutputTokens":  4096,
			"responseMimeType": "application/json",
			"responseSchema":   menuSchema,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return menu.MenuData{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return menu.MenuData{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return menu.MenuData{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return menu.MenuData{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return menu.MenuData{}, fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return menu.MenuData{}, err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return menu.MenuData{}, errors.New("empty gemini response")
	}

	output := result.Candidates[0].Content.Parts[0].Text
	if !json.Valid([]byte(output)) {
		return menu.MenuData{}, errors.New("gemini returned non-json output")
	}

	var data menu.MenuData
	if err := json.Unmarshal([]byte(output), &data); err != nil {
		return menu.MenuData{}, errors.New("invalid menu JSON from gemini")
	}

	return data, nil
}
