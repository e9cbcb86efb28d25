package sanitizer

import (
	"testing"
	"time"
)

func TestDeepSanitize_NestedStructures(t *testing.T) {
	payload := map[string]any{
		"a": []any{
			map[string]any{
				"b": map[string]any{
					"c": "<script>x</script>y",
				},
			},
		},
	}

	got := DeepSanitize(payload, nil).(map[string]any)

	inner := got["a"].([]any)[0].(map[string]any)["b"].(map[string]any)
	if inner["c"] != "y" {
		t.Errorf("nested string not sanitized: %q", inner["c"])
	}
}

func TestDeepSanitize_RichKeyScoping(t *testing.T) {
	payload := map[string]any{
		"description": "<p>ok</p>",
		"title":       "<p>ok</p>",
	}

	got := DeepSanitize(payload, NewRichKeys("description")).(map[string]any)

	if got["description"] != "<p>ok</p>" {
		t.Errorf("rich key lost allowed markup: %q", got["description"])
	}
	if got["title"] != "ok" {
		t.Errorf("strict key kept markup: %q", got["title"])
	}
}

func TestDeepSanitize_PrimitivesPassThrough(t *testing.T) {
	payload := map[string]any{
		"count":      float64(3),
		"negotiable": true,
		"remarks":    nil,
	}

	got := DeepSanitize(payload, nil).(map[string]any)

	if got["count"] != float64(3) {
		t.Errorf("number changed: %v", got["count"])
	}
	if got["negotiable"] != true {
		t.Errorf("bool changed: %v", got["negotiable"])
	}
	if got["remarks"] != nil {
		t.Errorf("null changed: %v", got["remarks"])
	}
}

func TestDeepSanitize_DoesNotMutateInput(t *testing.T) {
	original := map[string]any{
		"title": "<b>Engineer</b>",
		"tags":  []any{"<i>go</i>"},
	}

	_ = DeepSanitize(original, nil)

	if original["title"] != "<b>Engineer</b>" {
		t.Errorf("input map mutated: %q", original["title"])
	}
	if original["tags"].([]any)[0] != "<i>go</i>" {
		t.Errorf("input slice mutated: %v", original["tags"])
	}
}

func TestDeepSanitize_UnrecognizedTypeDropped(t *testing.T) {
	payload := map[string]any{
		"when":  time.Now(),
		"title": "ok",
	}

	got := DeepSanitize(payload, nil).(map[string]any)

	if got["when"] != nil {
		t.Errorf("unrecognized type passed through: %v", got["when"])
	}
	if got["title"] != "ok" {
		t.Errorf("sibling string affected: %q", got["title"])
	}
}

func TestDeepSanitize_TopLevelValues(t *testing.T) {
	if got := DeepSanitize("<script>x</script>y", nil); got != "y" {
		t.Errorf("top-level string = %v", got)
	}
	if got := DeepSanitize(true, nil); got != true {
		t.Errorf("top-level bool = %v", got)
	}
	if got := DeepSanitize(nil, nil); got != nil {
		t.Errorf("top-level nil = %v", got)
	}
	arr := DeepSanitize([]any{"<b>a</b>", float64(1)}, nil).([]any)
	if arr[0] != "a" || arr[1] != float64(1) {
		t.Errorf("top-level array = %v", arr)
	}
}
