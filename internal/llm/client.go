package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GeneratedQuestion is the shape the model is asked to produce for each
// multiple-choice question.
type GeneratedQuestion struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// GenerateQuestions asks the model for count multiple-choice questions about
// the topic at the given difficulty. The model response is treated as
// untrusted: code fences are stripped and the payload must parse as the
// expected JSON array.
func (c *Client) GenerateQuestions(ctx context.Context, topic, difficulty string, count int) ([]GeneratedQuestion, error) {
	prompt := buildQuizPrompt(topic, difficulty, count)

	request := chatCompletionRequest{
		Model: c.Model,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	response, err := c.sendChatRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	raw := cleanJSONContent(response.Choices[0].Message.Content)

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}
	return questions, nil
}

func buildQuizPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions about "%s" with difficulty "%s".
Each question must have exactly 4 options, 1 correct answer, and a short explanation.
Format the response as valid JSON only (no extra text).
Example:
[
  {
    "questionText": "string",
    "options": ["A", "B", "C", "D"],
    "correctAnswer": "string",
    "explanation": "string"
  }
]`, count, topic, difficulty)
}

func (c *Client) sendChatRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// cleanJSONContent strips markdown code fences models tend to wrap JSON in.
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
