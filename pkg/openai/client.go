package openai

import (
	"Sue-Backend/domain"
	"Sue-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

type (
	Client interface {
		Configured() bool
		ChatCompletion(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error)
		VisionCompletion(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
	}

	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	client struct {
		httpClient *http.Client
	}
)

func NewClient() Client {
	return &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) Configured() bool {
	return utils.GetConfig("OPENAI_API_KEY") != ""
}

func (c *client) ChatCompletion(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	apiKey := utils.GetConfig("OPENAI_API_KEY")
	if apiKey == "" {
		return "", domain.ErrAIKeyMissing
	}

	model := utils.GetConfig("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	requestBody := map[string]interface{}{
		"model":       model,
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	return c.complete(ctx, apiKey, requestBody)
}

func (c *client) VisionCompletion(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	apiKey := utils.GetConfig("OPENAI_API_KEY")
	if apiKey == "" {
		return "", domain.ErrAIKeyMissing
	}

	model := utils.GetConfig("OPENAI_VISION_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	base64Image := base64.StdEncoding.EncodeToString(imageData)

	requestBody := map[string]interface{}{
		"model": model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": prompt,
					},
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url": fmt.Sprintf("data:%s;base64,%s", mimeType, base64Image),
						},
					},
				},
			},
		},
		"temperature": 0.3,
		"max_tokens":  1000,
	}

	return c.complete(ctx, apiKey, requestBody)
}

func (c *client) complete(ctx context.Context, apiKey string, requestBody map[string]interface{}) (string, error) {
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", completionsURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrAIRequestFailed, resp.Status, string(bodyBytes))
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completionResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAIResponse, err)
	}

	if len(completionResp.Choices) == 0 {
		return "", domain.ErrInvalidAIResponse
	}

	return completionResp.Choices[0].Message.Content, nil
}
