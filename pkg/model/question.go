package model

// QuestionType is the closed set of pre-screening question variants.
type QuestionType string

const (
	QuestionTypeDropdown   QuestionType = "dropdown"
	QuestionTypeCheckboxes QuestionType = "checkboxes"
	QuestionTypeRange      QuestionType = "range"
	QuestionTypeShort      QuestionType = "short"
	QuestionTypeLong       QuestionType = "long"
)

// ParseQuestionType resolves raw input against the variant set. Anything
// unrecognized coerces to the short-answer type.
func ParseQuestionType(raw string) QuestionType {
	switch t := QuestionType(raw); t {
	case QuestionTypeDropdown, QuestionTypeCheckboxes, QuestionTypeRange,
		QuestionTypeShort, QuestionTypeLong:
		return t
	default:
		return QuestionTypeShort
	}
}

// QuestionOption is one selectable choice of a dropdown or checkboxes
// question. ID is derived from the label when the client does not supply one.
type QuestionOption struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
}

// PreScreeningQuestion is one screening question shown to a candidate.
// Options is populated only for dropdown/checkboxes questions; Min, Max and
// Currency only for range questions.
type PreScreeningQuestion struct {
	ID       string           `bson:"id" json:"id"`
	Key      string           `bson:"key" json:"key"`
	Title    string           `bson:"title" json:"title"`
	Type     QuestionType     `bson:"type" json:"type"`
	Required bool             `bson:"required" json:"required"`
	Options  []QuestionOption `bson:"options,omitempty" json:"options,omitempty"`
	Min      *float64         `bson:"min,omitempty" json:"min,omitempty"`
	Max      *float64         `bson:"max,omitempty" json:"max,omitempty"`
	Currency string           `bson:"currency,omitempty" json:"currency,omitempty"`
}
