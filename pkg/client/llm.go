package client

import (
	"fmt"
	"net/http"
)

// LLMClient talks to an OpenAI-compatible chat completions endpoint.
type LLMClient struct {
	http   *HttpClient
	apiKey string
	model  string
}

func NewLLMClient(baseURL, apiKey, model string) *LLMClient {
	return &LLMClient{
		http:   NewHttpClient(baseURL),
		apiKey: apiKey,
		model:  model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single-turn prompt and returns the raw model output.
func (c *LLMClient) Complete(prompt string) (string, error) {
	req := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	resp, err := c.http.POSTWithHeaders("/chat/completions", req, headers)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, GetErrorMessage(resp))
	}

	var completion chatCompletionResponse
	if err := resp.DecodeJSON(&completion); err != nil {
		return "", fmt.Errorf("failed to decode chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
