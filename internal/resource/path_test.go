package resource

import (
	"fmt"
	"testing"
)

func draftDocument() map[string]any {
	return map[string]any{
		"title": "КСР 32",
		"keySpecs": map[string]any{
			"height": "32 м",
			"output": "90 м³/ч",
		},
		"specifications": map[string]any{
			"general": []any{
				map[string]any{"label": "Масса", "value": "26 т", "highlight": false},
				map[string]any{"label": "Длина", "value": "11 м", "highlight": true},
			},
		},
		"features": []any{"one", "two"},
	}
}

func TestSetPathWritesNestedField(t *testing.T) {
	draft := draftDocument()

	if err := SetPath(draft, "keySpecs.height", "36 м"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keySpecs := draft["keySpecs"].(map[string]any)
	if keySpecs["height"] != "36 м" {
		t.Fatalf("expected height to update, got %v", keySpecs["height"])
	}
	if keySpecs["output"] != "90 м³/ч" {
		t.Fatalf("sibling field must be untouched, got %v", keySpecs["output"])
	}
}

func TestSetPathWritesThroughArrayIndex(t *testing.T) {
	draft := draftDocument()

	if err := SetPath(draft, "specifications.general.1.value", "12 м"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	general := draft["specifications"].(map[string]any)["general"].([]any)
	entry := general[1].(map[string]any)
	if entry["value"] != "12 м" {
		t.Fatalf("expected array entry to update, got %v", entry["value"])
	}
}

func TestSetPathTopLevelKey(t *testing.T) {
	draft := map[string]any{"a": map[string]any{"b": float64(1)}}

	if err := SetPath(draft, "a.b", float64(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft["a"].(map[string]any)["b"] != float64(2) {
		t.Fatalf("expected a.b == 2, got %v", draft["a"])
	}
}

func TestSetPathRejectsMissingBranches(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing-final-key", path: "a.c"},
		{name: "missing-intermediate", path: "x.b"},
		{name: "index-into-object", path: "a.0"},
		{name: "empty-path", path: ""},
		{name: "empty-segment", path: "a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := map[string]any{"a": map[string]any{"b": float64(1)}}
			err := SetPath(draft, tt.path, float64(2))
			if err == nil {
				t.Fatalf("expected path error for %q", tt.path)
			}
			if KindOf(err) != KindPathNotFound {
				t.Fatalf("expected path-not-found kind, got %v (%v)", KindOf(err), err)
			}
			if _, created := draft["a"].(map[string]any)["c"]; created {
				t.Fatalf("failed mutation must not create the missing key")
			}
		})
	}
}

func TestSetPathRejectsIndexOutOfRange(t *testing.T) {
	draft := draftDocument()

	err := SetPath(draft, "features.5", "six")
	if err == nil || KindOf(err) != KindPathNotFound {
		t.Fatalf("expected out-of-range failure, got %v", err)
	}
}

func TestAddArrayItemAppendsEmptyString(t *testing.T) {
	draft := draftDocument()

	if err := AddArrayItem(draft, "features"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	features := draft["features"].([]any)
	if len(features) != 3 {
		t.Fatalf("expected 3 features, got %d", len(features))
	}
	if features[2] != "" {
		t.Fatalf("appended item must be an empty string, got %v", features[2])
	}
}

func TestAddArrayItemRequiresExistingArray(t *testing.T) {
	draft := draftDocument()

	if err := AddArrayItem(draft, "advantages"); err == nil || KindOf(err) != KindPathNotFound {
		t.Fatalf("expected path error for missing array, got %v", err)
	}
	if err := AddArrayItem(draft, "title"); err == nil || KindOf(err) != KindPathNotFound {
		t.Fatalf("expected path error for non-array target, got %v", err)
	}
}

func TestRemoveArrayItemDeletesByIndex(t *testing.T) {
	draft := draftDocument()

	if err := RemoveArrayItem(draft, "specifications.general", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	general := draft["specifications"].(map[string]any)["general"].([]any)
	if len(general) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(general))
	}
	if label := general[0].(map[string]any)["label"]; label != "Длина" {
		t.Fatalf("expected the second entry to survive, got %v", label)
	}
}

func TestRemoveArrayItemRejectsBadIndex(t *testing.T) {
	for _, index := range []int{-1, 2} {
		draft := draftDocument()
		err := RemoveArrayItem(draft, "features", index)
		if err == nil || KindOf(err) != KindPathNotFound {
			t.Fatalf("expected out-of-range failure for index %d, got %v", index, err)
		}
	}
}

func TestPathErrorsCarryOperationCodes(t *testing.T) {
	err := SetPath(map[string]any{}, "missing", "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	expected := fmt.Sprintf("%s.%s", opSetPath, "segment_missing")
	if CodeOf(err) != expected {
		t.Fatalf("unexpected code %q, want %q", CodeOf(err), expected)
	}
}
