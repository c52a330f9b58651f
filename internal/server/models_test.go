package server

import (
	"net/http"
	"testing"
)

func TestCreateModelReturnsEnvelopeWithSlug(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeEnvelope(t, recorder)
	if payload["success"] != true {
		t.Fatalf("expected success envelope, got %v", payload)
	}
	data := payload["data"].(map[string]any)
	if data["id"] != "32rx-170" {
		t.Fatalf("unexpected slug %v", data["id"])
	}
	if data["category"] != "truck-mounted" {
		t.Fatalf("unexpected default category %v", data["category"])
	}
}

func TestListModelsFiltersButStatsStayGlobal(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)
	perform(t, handler, http.MethodPost, "/api/models", `{"title":"HBS-40","category":"stationary"}`)

	recorder := perform(t, handler, http.MethodGet, "/api/models?category=stationary", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	data := payload["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected one filtered model, got %d", len(data))
	}
	stats := payload["stats"].(map[string]any)
	if stats["total"] != float64(2) {
		t.Fatalf("expected global total 2, got %v", stats["total"])
	}
}

func TestListModelsAllSentinelDisablesFilter(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)
	perform(t, handler, http.MethodPost, "/api/models", `{"title":"HBS-40","category":"stationary"}`)

	recorder := perform(t, handler, http.MethodGet, "/api/models?category=all", "")

	payload := decodeEnvelope(t, recorder)
	data := payload["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected full listing, got %d records", len(data))
	}
}

func TestGetModelByID(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)

	recorder := perform(t, handler, http.MethodGet, "/api/models?id=32rx-170", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	data := payload["data"].(map[string]any)
	if data["title"] != "KCP 32RX-170" {
		t.Fatalf("unexpected title %v", data["title"])
	}
}

func TestGetUnknownModelReturns404WithCode(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodGet, "/api/models?id=no-such", "")

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	if payload["success"] != false {
		t.Fatalf("expected failure envelope, got %v", payload)
	}
	if payload["code"] != "catalog.get.unknown_id" {
		t.Fatalf("unexpected code %v", payload["code"])
	}
	if payload["status"] != float64(http.StatusNotFound) {
		t.Fatalf("unexpected status field %v", payload["status"])
	}
}

func TestReplaceModelResetsOmittedFields(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models",
		`{"title":"KCP 32RX-170","price":"от 18 000 000 ₽","features":["Русификация"]}`)

	recorder := perform(t, handler, http.MethodPut, "/api/models",
		`{"id":"32rx-170","title":"KCP 32RX-170","category":"truck-mounted"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeEnvelope(t, recorder)
	data := payload["data"].(map[string]any)
	if data["price"] != "" {
		t.Fatalf("expected omitted price to reset, got %v", data["price"])
	}
	if features := data["features"].([]any); len(features) != 0 {
		t.Fatalf("expected omitted features to reset, got %v", features)
	}
}

func TestReplaceModelRequiresID(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodPut, "/api/models", `{"title":"KCP 32RX-170"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	if payload["error"] != "missing_id" {
		t.Fatalf("unexpected error %v", payload["error"])
	}
}

func TestPatchModelSetsNestedField(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)

	recorder := perform(t, handler, http.MethodPatch, "/api/models",
		`{"id":"32rx-170","path":"keySpecs.height","value":"32 м"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeEnvelope(t, recorder)
	data := payload["data"].(map[string]any)
	keySpecs := data["keySpecs"].(map[string]any)
	if keySpecs["height"] != "32 м" {
		t.Fatalf("unexpected height %v", keySpecs["height"])
	}
}

func TestPatchModelMissingBranchReturns400(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)

	recorder := perform(t, handler, http.MethodPatch, "/api/models",
		`{"id":"32rx-170","path":"keySpecs.missing.leaf","value":"x"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	if payload["code"] != "resource.set_path.segment_missing" {
		t.Fatalf("unexpected code %v", payload["code"])
	}
}

func TestPatchModelArrayOps(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170","features":["a","b"]}`)

	added := perform(t, handler, http.MethodPatch, "/api/models",
		`{"id":"32rx-170","op":"add_item","path":"features"}`)
	if added.Code != http.StatusOK {
		t.Fatalf("unexpected add status %d: %s", added.Code, added.Body.String())
	}
	payload := decodeEnvelope(t, added)
	features := payload["data"].(map[string]any)["features"].([]any)
	if len(features) != 3 || features[2] != "" {
		t.Fatalf("expected appended blank entry, got %v", features)
	}

	removed := perform(t, handler, http.MethodPatch, "/api/models",
		`{"id":"32rx-170","op":"remove_item","path":"features","index":0}`)
	if removed.Code != http.StatusOK {
		t.Fatalf("unexpected remove status %d: %s", removed.Code, removed.Body.String())
	}
	payload = decodeEnvelope(t, removed)
	features = payload["data"].(map[string]any)["features"].([]any)
	if len(features) != 2 || features[0] != "b" {
		t.Fatalf("unexpected features after removal: %v", features)
	}
}

func TestPatchModelValidationFailures(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)

	testCases := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "missing-id", body: `{"path":"title","value":"x"}`, wantError: "missing_id"},
		{name: "missing-path", body: `{"id":"32rx-170","value":"x"}`, wantError: "missing_path"},
		{name: "unknown-op", body: `{"id":"32rx-170","op":"merge","path":"title"}`, wantError: "unknown_op"},
		{name: "remove-without-index", body: `{"id":"32rx-170","op":"remove_item","path":"features"}`, wantError: "missing_index"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := perform(t, handler, http.MethodPatch, "/api/models", testCase.body)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status %d", recorder.Code)
			}
			payload := decodeEnvelope(t, recorder)
			if payload["error"] != testCase.wantError {
				t.Fatalf("expected error %s, got %v", testCase.wantError, payload["error"])
			}
		})
	}
}

func TestDeleteModelRemovesRecord(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/models", `{"title":"KCP 32RX-170"}`)

	recorder := perform(t, handler, http.MethodDelete, "/api/models?id=32rx-170", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}

	lookup := perform(t, handler, http.MethodGet, "/api/models?id=32rx-170", "")
	if lookup.Code != http.StatusNotFound {
		t.Fatalf("expected deleted model to be gone, got %d", lookup.Code)
	}
}
