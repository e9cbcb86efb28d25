package model

// GenerateQuestionsRequest asks for interview questions in one category.
type GenerateQuestionsRequest struct {
	Label             string   `json:"label"`
	AskCount          int      `json:"askCount"`
	JobDescription    string   `json:"jobDescription,omitempty"`
	SecretPrompt      string   `json:"secretPrompt,omitempty"`
	ExistingQuestions []string `json:"existingQuestions,omitempty"`
}

type GenerateQuestionsResponse struct {
	Label     string   `json:"label"`
	Questions []string `json:"questions"`
}
