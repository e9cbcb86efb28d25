package normalizer

import (
	"strings"
	"testing"

	"careerdesk/pkg/model"
)

func question(fields map[string]any) map[string]any {
	base := map[string]any{"title": "Question"}
	for k, v := range fields {
		base[k] = v
	}
	return base
}

func TestNormalizeNonArrayInput(t *testing.T) {
	n := New("PHP")

	tests := []struct {
		name         string
		raw          any
		wantWarnings int
	}{
		{"nil input", nil, 0},
		{"string input", "not questions", 1},
		{"object input", map[string]any{"title": "x"}, 1},
		{"number input", float64(5), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, warnings := n.Normalize(tt.raw)
			if len(questions) != 0 {
				t.Errorf("expected empty list, got %d questions", len(questions))
			}
			if len(warnings) != tt.wantWarnings {
				t.Errorf("expected %d warnings, got %d: %v", tt.wantWarnings, len(warnings), warnings)
			}
		})
	}
}

func TestNormalizeCapsAtTwentyFive(t *testing.T) {
	n := New("PHP")

	raw := make([]any, 0, 30)
	for i := 0; i < 30; i++ {
		raw = append(raw, question(nil))
	}

	questions, warnings := n.Normalize(raw)
	if len(questions) != MaxQuestions {
		t.Fatalf("expected %d questions, got %d", MaxQuestions, len(questions))
	}
	if len(warnings) == 0 {
		t.Error("expected a truncation warning")
	}
}

func TestNormalizeDropsInvalidEntries(t *testing.T) {
	n := New("PHP")

	raw := []any{
		question(nil),
		"not an object",
		question(map[string]any{"title": "   "}),
		question(map[string]any{"title": "Valid"}),
	}

	questions, warnings := n.Normalize(raw)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	for _, q := range questions {
		if q.Title == "" {
			t.Error("retained question has empty title")
		}
	}
}

func TestNormalizeGeneratesIDAndKey(t *testing.T) {
	n := New("PHP")

	questions, _ := n.Normalize([]any{question(nil)})
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.ID == "" {
		t.Error("expected generated ID")
	}
	if q.Key != q.ID {
		t.Errorf("expected key to default to id, got key=%q id=%q", q.Key, q.ID)
	}

	questions, _ = n.Normalize([]any{question(map[string]any{"id": "stable-id", "key": "custom-key"})})
	q = questions[0]
	if q.ID != "stable-id" {
		t.Errorf("expected supplied id preserved, got %q", q.ID)
	}
	if q.Key != "custom-key" {
		t.Errorf("expected supplied key preserved, got %q", q.Key)
	}
}

func TestNormalizeTypeCoercion(t *testing.T) {
	n := New("PHP")

	tests := []struct {
		rawType  string
		expected model.QuestionType
	}{
		{"dropdown", model.QuestionTypeDropdown},
		{"checkboxes", model.QuestionTypeCheckboxes},
		{"range", model.QuestionTypeRange},
		{"short", model.QuestionTypeShort},
		{"long", model.QuestionTypeLong},
		{"multiple-choice", model.QuestionTypeShort},
		{"", model.QuestionTypeShort},
	}

	for _, tt := range tests {
		t.Run("type "+tt.rawType, func(t *testing.T) {
			questions, _ := n.Normalize([]any{question(map[string]any{"type": tt.rawType})})
			if len(questions) != 1 {
				t.Fatalf("expected 1 question, got %d", len(questions))
			}
			if questions[0].Type != tt.expected {
				t.Errorf("expected type %q, got %q", tt.expected, questions[0].Type)
			}
			if !questions[0].Required {
				t.Error("expected required to always be true")
			}
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	n := New("PHP")

	raw := []any{question(map[string]any{
		"type": "dropdown",
		"options": []any{
			map[string]any{"label": "A"},
			map[string]any{"label": "  "},
			map[string]any{"label": "B"},
			"not an object",
		},
	})}

	questions, warnings := n.Normalize(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	opts := questions[0].Options
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Label != "A" || opts[1].Label != "B" {
		t.Errorf("unexpected option labels: %v", opts)
	}
	for _, o := range opts {
		if o.ID == "" {
			t.Errorf("option %q has empty derived id", o.Label)
		}
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestNormalizeOptionIDDerivation(t *testing.T) {
	n := New("PHP")

	raw := []any{question(map[string]any{
		"type": "checkboxes",
		"options": []any{
			map[string]any{"label": "Full Time Work"},
			map[string]any{"id": "custom", "label": "Part Time"},
		},
	})}

	questions, _ := n.Normalize(raw)
	opts := questions[0].Options
	if opts[0].ID != "full-time-work" {
		t.Errorf("expected slugified id, got %q", opts[0].ID)
	}
	if opts[1].ID != "custom" {
		t.Errorf("expected supplied id preserved, got %q", opts[1].ID)
	}
}

func TestNormalizeOptionsCap(t *testing.T) {
	n := New("PHP")

	options := make([]any, 0, 30)
	for i := 0; i < 30; i++ {
		options = append(options, map[string]any{"label": "Option"})
	}

	questions, _ := n.Normalize([]any{question(map[string]any{
		"type":    "dropdown",
		"options": options,
	})})

	if len(questions[0].Options) != MaxOptions {
		t.Errorf("expected %d options, got %d", MaxOptions, len(questions[0].Options))
	}
}

func TestNormalizeOptionsIgnoredForNonChoiceTypes(t *testing.T) {
	n := New("PHP")

	questions, _ := n.Normalize([]any{question(map[string]any{
		"type":    "short",
		"options": []any{map[string]any{"label": "A"}},
	})})

	if questions[0].Options != nil {
		t.Errorf("expected no options for short question, got %v", questions[0].Options)
	}
}

func TestNormalizeRange(t *testing.T) {
	n := New("PHP")

	tests := []struct {
		name     string
		fields   map[string]any
		wantMin  *float64
		wantMax  *float64
		currency string
	}{
		{
			name:     "money strings parsed",
			fields:   map[string]any{"min": "₱40,000.00", "max": "₱60,000.00"},
			wantMin:  f(40000),
			wantMax:  f(60000),
			currency: "PHP",
		},
		{
			name:     "inverted bounds swapped",
			fields:   map[string]any{"min": "500", "max": "100"},
			wantMin:  f(100),
			wantMax:  f(500),
			currency: "PHP",
		},
		{
			name:     "non-numeric left absent",
			fields:   map[string]any{"min": "abc", "max": "100"},
			wantMin:  nil,
			wantMax:  f(100),
			currency: "PHP",
		},
		{
			name:     "numeric values accepted",
			fields:   map[string]any{"min": float64(1000), "max": float64(2000)},
			wantMin:  f(1000),
			wantMax:  f(2000),
			currency: "PHP",
		},
		{
			name:     "currency uppercased",
			fields:   map[string]any{"currency": "usd"},
			wantMin:  nil,
			wantMax:  nil,
			currency: "USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields["type"] = "range"
			questions, _ := n.Normalize([]any{question(tt.fields)})
			if len(questions) != 1 {
				t.Fatalf("expected 1 question, got %d", len(questions))
			}

			q := questions[0]
			assertBound(t, "min", q.Min, tt.wantMin)
			assertBound(t, "max", q.Max, tt.wantMax)
			if q.Currency != tt.currency {
				t.Errorf("expected currency %q, got %q", tt.currency, q.Currency)
			}
		})
	}
}

func TestNormalizeTitleTruncation(t *testing.T) {
	n := New("PHP")

	long := strings.Repeat("a", 300)
	questions, _ := n.Normalize([]any{question(map[string]any{"title": long})})
	if len(questions[0].Title) != 200 {
		t.Errorf("expected title capped at 200 chars, got %d", len(questions[0].Title))
	}
}

func f(v float64) *float64 {
	return &v
}

func assertBound(t *testing.T, name string, got, want *float64) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("expected %s to be absent, got %v", name, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("expected %s=%v, got absent", name, *want)
		return
	}
	if *got != *want {
		t.Errorf("expected %s=%v, got %v", name, *want, *got)
	}
}
