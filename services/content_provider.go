// services/content_provider.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// Canned texts substituted when the model call fails.
const (
	fallbackMeal    = "🍎 Time for a healthy meal! Fuel your body with good nutrition today!"
	fallbackWorkout = "💪 Time to move your body! Every workout brings you closer to your goals!"
	fallbackReply   = "I hear you! Remember, every small step counts. You've got this! 💪"
)

// ContentProvider produces short SMS-sized text. Implementations never fail
// from the caller's point of view: the boolean reports whether a canned
// fallback was substituted for generated text.
type ContentProvider interface {
	GenerateMotivational(ctx context.Context, messageType string) (string, bool)
	GenerateReply(ctx context.Context, inbound string) (string, bool)
}

// FallbackText returns the canned reminder for a category.
func FallbackText(messageType string) string {
	if messageType == TypeMeal {
		return fallbackMeal
	}
	return fallbackWorkout
}

var motivationalPrompts = map[string]string{
	TypeMeal:    "Generate a short, encouraging SMS message (max 160 characters) to remind someone about eating a healthy meal. Make it motivational, friendly, and actionable.",
	TypeWorkout: "Generate a short, encouraging SMS message (max 160 characters) to motivate someone to work out. Make it energetic, inspiring, and actionable.",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GPTClient generates reminder and reply text through the OpenAI chat
// completions API.
type GPTClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGPTClient() *GPTClient {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}
	return &GPTClient{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GPTClient) GenerateMotivational(ctx context.Context, messageType string) (string, bool) {
	prompt, ok := motivationalPrompts[messageType]
	if !ok {
		prompt = motivationalPrompts[TypeWorkout]
	}

	text, err := g.complete(ctx,
		"You are a supportive health and fitness coach.",
		prompt)
	if err != nil {
		log.Printf("Failed to generate %s message: %v", messageType, err)
		return FallbackText(messageType), true
	}
	return text, false
}

func (g *GPTClient) GenerateReply(ctx context.Context, inbound string) (string, bool) {
	text, err := g.complete(ctx,
		"You are a supportive health and fitness coach. Respond to user messages with encouragement, practical advice, or motivation. Keep responses under 160 characters for SMS. Be empathetic and helpful.",
		fmt.Sprintf("User said: %q. Respond supportively.", inbound))
	if err != nil {
		log.Printf("Failed to generate reply: %v", err)
		return fallbackReply, true
	}
	return text, false
}

func (g *GPTClient) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   50,
		Temperature: 0.7,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Error closing completion response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(body))
	}

	body, _ := io.ReadAll(resp.Body)
	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	text := strings.TrimSpace(response.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai returned empty text")
	}
	return text, nil
}
