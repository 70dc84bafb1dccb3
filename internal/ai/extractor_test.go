package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestExtract(t *testing.T) {
	e := NewExtractorWithClient(&fakeCompleter{
		reply: `{"transactionType":"sale","item":"Rice","amount":5000,"currency":"NGN"}`,
	}, "gpt-4o-mini")

	draft, err := e.Extract(context.Background(), "sold 2 bags rice for 5000")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if draft.TransactionType != "sale" || draft.Item != "Rice" || draft.Amount != 5000 || draft.Currency != "NGN" {
		t.Fatalf("draft = %+v", draft)
	}
}

func TestExtractFencedReply(t *testing.T) {
	e := NewExtractorWithClient(&fakeCompleter{
		reply: "```json\n{\"transactionType\":\"expense\",\"item\":\"Fuel\",\"amount\":1500,\"currency\":\"NGN\"}\n```",
	}, "gpt-4o-mini")

	draft, err := e.Extract(context.Background(), "bought fuel for 1500")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if draft.TransactionType != "expense" || draft.Amount != 1500 {
		t.Fatalf("draft = %+v", draft)
	}
}

func TestExtractInvalidJSON(t *testing.T) {
	e := NewExtractorWithClient(&fakeCompleter{reply: "not json"}, "gpt-4o-mini")

	_, err := e.Extract(context.Background(), "anything")
	var invalid *InvalidJSONError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidJSONError, got %v", err)
	}
	if invalid.Raw != "not json" {
		t.Fatalf("Raw = %q, want original reply", invalid.Raw)
	}
	if invalid.Error() != "AI did not return valid JSON" {
		t.Fatalf("message = %q", invalid.Error())
	}
}

func TestExtractModelReportedError(t *testing.T) {
	e := NewExtractorWithClient(&fakeCompleter{reply: `{"error":"amount is missing"}`}, "gpt-4o-mini")

	draft, err := e.Extract(context.Background(), "sold rice")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if draft.Err != "amount is missing" {
		t.Fatalf("Err = %q", draft.Err)
	}
}

func TestExtractUpstreamFailure(t *testing.T) {
	e := NewExtractorWithClient(&fakeCompleter{err: errors.New("connection refused")}, "gpt-4o-mini")

	if _, err := e.Extract(context.Background(), "anything"); err == nil {
		t.Fatal("expected error")
	}
}
