package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// AIGenerator wraps a single prompt-templated call to an OpenAI-compatible
// chat-completions endpoint. Admins use it to draft content; the output goes
// straight back to the caller, nothing is persisted.
type AIGenerator struct {
	client *resty.Client
	model  string
}

func NewAIGenerator(baseURL, apiKey, model string) *AIGenerator {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(60 * time.Second)
	return &AIGenerator{client: client, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

const draftSystemPrompt = "You are a writing assistant for the Noorix Hub content site. " +
	"Write clear, engaging draft copy in markdown. Return only the draft, no preamble."

// Draft generates draft copy for the given topic. Tone is optional.
func (g *AIGenerator) Draft(ctx context.Context, topic, tone string) (string, error) {
	prompt := "Write a draft about: " + topic
	if tone != "" {
		prompt += "\nTone: " + tone
	}
	req := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: draftSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	var out chatResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("generation failed: %s", out.Error.Message)
		}
		return "", fmt.Errorf("generation failed: %s", resp.Status())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("generation returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
