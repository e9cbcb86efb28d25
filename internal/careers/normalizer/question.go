package normalizer

import (
	"fmt"
	"strings"

	"careerdesk/pkg/model"
	"careerdesk/pkg/sanitizer"

	"github.com/google/uuid"
)

const (
	MaxQuestions = 25
	MaxOptions   = 25

	maxIDLen       = 120
	maxKeyLen      = 120
	maxTitleLen    = 200
	maxLabelLen    = 120
	maxOptionIDLen = 80
	maxSlugLen     = 50
	maxCurrencyLen = 6
)

// Normalizer repairs client-supplied pre-screening question payloads into the
// closed model.PreScreeningQuestion shape. Malformed entries are dropped or
// repaired, never rejected; every silent repair is reported as a warning so
// the caller can log what changed.
type Normalizer struct {
	defaultCurrency string
}

func New(defaultCurrency string) *Normalizer {
	if defaultCurrency == "" {
		defaultCurrency = "PHP"
	}
	return &Normalizer{defaultCurrency: defaultCurrency}
}

// Normalize accepts the decoded JSON value of the questions field. Anything
// that is not an array yields an empty list.
func (n *Normalizer) Normalize(raw any) ([]model.PreScreeningQuestion, []string) {
	var warnings []string

	if raw == nil {
		return []model.PreScreeningQuestion{}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		warnings = append(warnings, "preScreeningQuestions is not an array, ignored")
		return []model.PreScreeningQuestion{}, warnings
	}

	if len(items) > MaxQuestions {
		warnings = append(warnings, fmt.Sprintf("question list truncated from %d to %d entries", len(items), MaxQuestions))
		items = items[:MaxQuestions]
	}

	questions := make([]model.PreScreeningQuestion, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("question %d dropped: not an object", i))
			continue
		}

		q, itemWarnings, keep := n.normalizeOne(i, obj)
		warnings = append(warnings, itemWarnings...)
		if keep {
			questions = append(questions, q)
		}
	}

	return questions, warnings
}

func (n *Normalizer) normalizeOne(index int, obj map[string]any) (model.PreScreeningQuestion, []string, bool) {
	var warnings []string

	id := stringField(obj, "id", maxIDLen)
	if id == "" {
		id = uuid.New().String()
	}

	key := stringField(obj, "key", maxKeyLen)
	if key == "" {
		key = id
	}

	title := stringField(obj, "title", maxTitleLen)
	if title == "" {
		warnings = append(warnings, fmt.Sprintf("question %d dropped: empty title after normalization", index))
		return model.PreScreeningQuestion{}, warnings, false
	}

	rawType, _ := obj["type"].(string)
	qType := model.ParseQuestionType(rawType)
	if rawType != "" && string(qType) != strings.TrimSpace(rawType) {
		warnings = append(warnings, fmt.Sprintf("question %d: unrecognized type %q coerced to %q", index, rawType, qType))
	}

	q := model.PreScreeningQuestion{
		ID:       id,
		Key:      key,
		Title:    title,
		Type:     qType,
		Required: true,
	}

	switch qType {
	case model.QuestionTypeDropdown, model.QuestionTypeCheckboxes:
		options, optWarnings := n.normalizeOptions(index, obj["options"])
		warnings = append(warnings, optWarnings...)
		q.Options = options

	case model.QuestionTypeRange:
		min := parseBound(obj["min"])
		max := parseBound(obj["max"])
		if min != nil && max != nil && *min > *max {
			warnings = append(warnings, fmt.Sprintf("question %d: min %v greater than max %v, swapped", index, *min, *max))
			min, max = max, min
		}
		q.Min = min
		q.Max = max

		currency := stringField(obj, "currency", maxCurrencyLen)
		if currency == "" {
			currency = n.defaultCurrency
		}
		q.Currency = strings.ToUpper(currency)

	case model.QuestionTypeShort, model.QuestionTypeLong:
		// No type-specific fields.
	}

	return q, warnings, true
}

func (n *Normalizer) normalizeOptions(index int, raw any) ([]model.QuestionOption, []string) {
	var warnings []string

	items, ok := raw.([]any)
	if !ok {
		if raw != nil {
			warnings = append(warnings, fmt.Sprintf("question %d: options is not an array, treated as empty", index))
		}
		return []model.QuestionOption{}, warnings
	}

	if len(items) > MaxOptions {
		warnings = append(warnings, fmt.Sprintf("question %d: options truncated from %d to %d entries", index, len(items), MaxOptions))
		items = items[:MaxOptions]
	}

	options := make([]model.QuestionOption, 0, len(items))
	for j, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("question %d option %d dropped: not an object", index, j))
			continue
		}

		label := stringField(obj, "label", maxLabelLen)
		if label == "" {
			warnings = append(warnings, fmt.Sprintf("question %d option %d dropped: empty label", index, j))
			continue
		}

		optID := stringField(obj, "id", maxOptionIDLen)
		if optID == "" {
			optID = sanitizer.Slugify(label, maxSlugLen)
		}

		options = append(options, model.QuestionOption{
			ID:    optID,
			Label: label,
		})
	}

	return options, warnings
}

func stringField(obj map[string]any, key string, max int) string {
	s, _ := obj[key].(string)
	return sanitizer.Truncate(strings.TrimSpace(s), max)
}

func parseBound(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if f, ok := sanitizer.ParseMoney(v); ok {
			return &f
		}
		return nil
	default:
		if f, ok := sanitizer.ClampNumber(v, sanitizer.Bounds{}); ok {
			return &f
		}
		return nil
	}
}
