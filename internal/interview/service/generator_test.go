package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "careerdesk/pkg/errors"
	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"
)

type mockTextGenerator struct {
	completeFunc func(prompt string) (string, error)
	lastPrompt   string
}

func (m *mockTextGenerator) Complete(prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.completeFunc != nil {
		return m.completeFunc(prompt)
	}
	return `{"questions":["What is your experience with Go?"]}`, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestGenerate_ParsesCleanJSON(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(prompt string) (string, error) {
			return `{"questions":["Q1","Q2","Q3"]}`, nil
		},
	}
	svc := NewGeneratorService(gen, testLogger())

	resp, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label:    "Technical",
		AskCount: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Label != "Technical" {
		t.Errorf("expected label 'Technical', got %q", resp.Label)
	}
	if len(resp.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(resp.Questions))
	}
	if resp.Questions[0] != "Q1" {
		t.Errorf("unexpected first question: %q", resp.Questions[0])
	}
}

func TestGenerate_StripsCodeFences(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(prompt string) (string, error) {
			return "```json\n{\"questions\":[\"Q1\",\"Q2\"]}\n```", nil
		},
	}
	svc := NewGeneratorService(gen, testLogger())

	resp, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label:    "Behavioral",
		AskCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d: %v", len(resp.Questions), resp.Questions)
	}
}

func TestGenerate_SalvagesEmbeddedJSON(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(prompt string) (string, error) {
			return `Here are your questions: {"questions":["Q1"]} hope that helps!`, nil
		},
	}
	svc := NewGeneratorService(gen, testLogger())

	resp, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label:    "Technical",
		AskCount: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Questions) != 1 || resp.Questions[0] != "Q1" {
		t.Errorf("unexpected questions: %v", resp.Questions)
	}
}

func TestGenerate_PadsShortResponses(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(prompt string) (string, error) {
			return `{"questions":["Q1","  ","Q2"]}`, nil
		},
	}
	svc := NewGeneratorService(gen, testLogger())

	resp, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label:    "Technical",
		AskCount: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Questions) != 4 {
		t.Fatalf("expected 4 questions after padding, got %d", len(resp.Questions))
	}
	if !strings.Contains(resp.Questions[2], "Placeholder question 1") {
		t.Errorf("expected first placeholder at index 2, got %q", resp.Questions[2])
	}
	if !strings.Contains(resp.Questions[3], "Placeholder question 2") {
		t.Errorf("expected second placeholder at index 3, got %q", resp.Questions[3])
	}
}

func TestGenerate_TruncatesLongResponses(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(prompt string) (string, error) {
			return `{"questions":["Q1","Q2","Q3","Q4"]}`, nil
		},
	}
	svc := NewGeneratorService(gen, testLogger())

	resp, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label:    "Technical",
		AskCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(resp.Questions))
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	svc := NewGeneratorService(&mockTextGenerator{}, testLogger())

	tests := []struct {
		name string
		req  *model.GenerateQuestionsRequest
	}{
		{name: "nil request", req: nil},
		{name: "empty label", req: &model.GenerateQuestionsRequest{Label: "   ", AskCount: 5}},
		{name: "askCount too low", req: &model.GenerateQuestionsRequest{Label: "Technical", AskCount: -1}},
		{name: "askCount too high", req: &model.GenerateQuestionsRequest{Label: "Technical", AskCount: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidInput {
				t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
			}
		})
	}
}

func TestGenerate_DefaultsAskCount(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(prompt string) (string, error) {
			return `{"questions":["Q1","Q2","Q3","Q4","Q5"]}`, nil
		},
	}
	svc := NewGeneratorService(gen, testLogger())

	resp, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label: "Technical",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Questions) != 5 {
		t.Errorf("expected default of 5 questions, got %d", len(resp.Questions))
	}
	if !strings.Contains(gen.lastPrompt, "array of 5 unique strings") {
		t.Errorf("expected prompt to ask for 5 questions, got: %s", gen.lastPrompt)
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	gen := &mockTextGenerator{}
	svc := NewGeneratorService(gen, testLogger())

	_, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
		Label:             "Technical",
		AskCount:          1,
		JobDescription:    "Design and build backend services",
		SecretPrompt:      "Probe for distributed systems depth",
		ExistingQuestions: []string{"Tell me about yourself", "Why this role?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Category: Technical",
		"Design and build backend services",
		"Probe for distributed systems depth",
		"Tell me about yourself | Why this role?",
	} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name         string
		completeFunc func(prompt string) (string, error)
	}{
		{
			name: "generator error",
			completeFunc: func(prompt string) (string, error) {
				return "", errors.New("connection refused")
			},
		},
		{
			name: "unparseable output",
			completeFunc: func(prompt string) (string, error) {
				return "I cannot help with that.", nil
			},
		},
		{
			name: "malformed salvage candidate",
			completeFunc: func(prompt string) (string, error) {
				return `{"questions": [unterminated`, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGeneratorService(&mockTextGenerator{completeFunc: tt.completeFunc}, testLogger())

			_, err := svc.Generate(context.Background(), &model.GenerateQuestionsRequest{
				Label:    "Technical",
				AskCount: 3,
			})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeUpstream {
				t.Errorf("expected code %s, got %s", apperrors.CodeUpstream, appErr.Code)
			}
		})
	}
}
