// Package ai is the boundary to the external model that turns free
// text like "sold 2 bags rice for 5000" into structured transaction
// fields.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// InvalidJSONError reports a model reply that could not be parsed as
// JSON. Raw carries the full reply for diagnostics; handlers echo it
// in the 500 response body.
type InvalidJSONError struct {
	Raw string
}

func (e *InvalidJSONError) Error() string {
	return "AI did not return valid JSON"
}

// Draft is the structured transaction the model extracted. Err is set
// when the model reports a missing required field instead of data.
type Draft struct {
	TransactionType string  `json:"transactionType"`
	Item            string  `json:"item"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Err             string  `json:"error,omitempty"`
}

// ChatCompleter is the slice of the OpenAI client the extractor
// needs; tests substitute a fake.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Extractor struct {
	client ChatCompleter
	model  string
}

func NewExtractor(apiKey, model string) *Extractor {
	return &Extractor{client: openai.NewClient(apiKey), model: model}
}

// NewExtractorWithClient wires a custom completion client, used by tests.
func NewExtractorWithClient(client ChatCompleter, model string) *Extractor {
	return &Extractor{client: client, model: model}
}

const systemPrompt = `You are a transaction parser for a small-business bookkeeping app.
Extract fields and respond ONLY with raw JSON.

JSON shape:
{
  "transactionType": "sale" | "expense",
  "item": string,
  "amount": number,
  "currency": "NGN"
}

- transactionType: "sale" if user sold something, "expense" if they bought.
- item: Title-cased product name.
- amount: positive number only.
- currency: default "NGN".
- If missing required field, return {"error":"reason"}.`

// Extract sends the transcript to the model and parses its reply.
func (e *Extractor) Extract(ctx context.Context, transcript string) (*Draft, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("model returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	slog.DebugContext(ctx, "Model reply received", "model", e.model, "reply", raw)

	var draft Draft
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &draft); err != nil {
		slog.WarnContext(ctx, "Model reply is not valid JSON", "reply", raw)
		return nil, &InvalidJSONError{Raw: raw}
	}
	return &draft, nil
}

// stripCodeFences unwraps replies the model insists on fencing as
// ```json ... ``` despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
