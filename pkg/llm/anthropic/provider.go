package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"catalog-chat-be/pkg/llm"
)

const messagesEndpoint = "https://api.anthropic.com/v1/messages"

type AnthropicProvider struct {
	apiKey string
	model  string
	client *http.Client
}

var _ llm.LLMProvider = (*AnthropicProvider)(nil)

func NewAnthropicProvider(apiKey, model string, timeout time.Duration) *AnthropicProvider {
	if model == "" {
		model = "claude-3-5-sonnet-latest"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(llm.Options{Temperature: 0.5, MaxTokens: 4096, Model: a.model}, opts)

	// Anthropic takes the system prompt as a top-level field, not a message.
	var system string
	apiMsgs := make([]apiMessage, 0, len(history))
	for _, m := range history {
		if m.Role == "system" {
			system = m.Content
			continue
		}
		apiMsgs = append(apiMsgs, apiMessage{Role: m.Role, Content: m.Content})
	}
	if len(apiMsgs) == 0 {
		return "", fmt.Errorf("anthropic requires at least one user message")
	}

	body := map[string]interface{}{
		"model":       options.Model,
		"max_tokens":  options.MaxTokens,
		"temperature": options.Temperature,
		"messages":    apiMsgs,
	}
	if system != "" {
		body["system"] = system
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("anthropic parse error: %w", err)
	}

	var text string
	for _, block := range result.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("anthropic returned no text content")
	}
	return text, nil
}
