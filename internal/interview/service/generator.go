package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "careerdesk/pkg/errors"
	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"
)

const (
	minAskCount     = 1
	maxAskCount     = 20
	defaultAskCount = 5
)

// TextGenerator is the contract the generator needs from an LLM client.
type TextGenerator interface {
	Complete(prompt string) (string, error)
}

type GeneratorService interface {
	Generate(ctx context.Context, req *model.GenerateQuestionsRequest) (*model.GenerateQuestionsResponse, error)
}

type generatorService struct {
	generator TextGenerator
	logger    *logger.Logger
}

func NewGeneratorService(generator TextGenerator, log *logger.Logger) GeneratorService {
	return &generatorService{
		generator: generator,
		logger:    log,
	}
}

func (s *generatorService) Generate(ctx context.Context, req *model.GenerateQuestionsRequest) (*model.GenerateQuestionsResponse, error) {
	if req == nil {
		return nil, apperrors.InvalidInput("Request body is required")
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, apperrors.InvalidInput("'label' is required")
	}

	askCount := req.AskCount
	if askCount == 0 {
		askCount = defaultAskCount
	}
	if askCount < minAskCount || askCount > maxAskCount {
		return nil, apperrors.InvalidInput(fmt.Sprintf("askCount must be between %d and %d", minAskCount, maxAskCount))
	}

	prompt := buildPrompt(label, askCount, req)

	raw, err := s.generator.Complete(prompt)
	if err != nil {
		s.logger.Error("Text generation request failed",
			"operation", "Generate",
			"label", label,
			"error", err,
		)
		return nil, apperrors.Upstream("Question generation failed", err)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		s.logger.Error("Failed to parse generated questions",
			"operation", "Generate",
			"label", label,
			"raw", raw,
			"error", err,
		)
		return nil, apperrors.Upstream("Question generation returned unparseable output", err)
	}

	// Models sometimes return fewer questions than asked for. Pad so the
	// caller always gets askCount entries back.
	for i := len(questions); i < askCount; i++ {
		questions = append(questions, fmt.Sprintf("(Placeholder question %d - model returned fewer than requested)", i-len(questions)+1))
	}
	if len(questions) > askCount {
		questions = questions[:askCount]
	}

	s.logger.Info("Generated interview questions",
		"operation", "Generate",
		"label", label,
		"count", len(questions),
	)

	return &model.GenerateQuestionsResponse{
		Label:     label,
		Questions: questions,
	}, nil
}

func buildPrompt(label string, askCount int, req *model.GenerateQuestionsRequest) string {
	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		jobDescription = "(none provided)"
	}
	secretPrompt := strings.TrimSpace(req.SecretPrompt)
	if secretPrompt == "" {
		secretPrompt = "(none provided)"
	}
	existing := "(none)"
	if len(req.ExistingQuestions) > 0 {
		existing = strings.Join(req.ExistingQuestions, " | ")
	}

	var b strings.Builder
	b.WriteString("You are an assistant that writes clear, concise, role-relevant interview questions.\n")
	fmt.Fprintf(&b, "Return ONLY a JSON object with a field \"questions\" that is an array of %d unique strings. No commentary.\n\n", askCount)
	fmt.Fprintf(&b, "Category: %s\n", label)
	fmt.Fprintf(&b, "Desired number of questions: %d\n", askCount)
	fmt.Fprintf(&b, "Job Description (may be partial): %s\n", jobDescription)
	fmt.Fprintf(&b, "Evaluator Secret Prompt (guidance for emphasis, if any): %s\n", secretPrompt)
	fmt.Fprintf(&b, "Avoid duplicating these existing questions: %s", existing)
	return b.String()
}

// parseQuestions extracts the questions array from model output. Code fences
// are stripped first, and if the whole payload is not valid JSON the first
// object-looking substring is tried before giving up.
func parseQuestions(raw string) ([]string, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Questions []string `json:"questions"`
	}

	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start == -1 || end <= start {
			return nil, fmt.Errorf("no JSON object found in model output")
		}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
			return nil, fmt.Errorf("failed to parse model output: %w", err)
		}
	}

	questions := make([]string, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			questions = append(questions, trimmed)
		}
	}
	return questions, nil
}
