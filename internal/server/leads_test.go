package server

import (
	"net/http"
	"testing"
)

const validLeadBody = `{"name":"Иван Петров","email":"ivan@example.ru","phone":"+7 999 000-00-00","message":"Интересует автобетононасос"}`

func TestCreateLeadAppliesDefaults(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodPost, "/api/leads", validLeadBody)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeEnvelope(t, recorder)
	data := payload["data"].(map[string]any)
	if data["id"] != "record-0001" {
		t.Fatalf("unexpected id %v", data["id"])
	}
	if data["status"] != "new" {
		t.Fatalf("unexpected default status %v", data["status"])
	}
	if data["source"] != "website" {
		t.Fatalf("unexpected default source %v", data["source"])
	}
}

func TestCreateLeadRejectsBlankRequiredField(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodPost, "/api/leads",
		`{"name":"","email":"ivan@example.ru","phone":"1","message":"m"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	if payload["code"] != "leads.create.missing_field" {
		t.Fatalf("unexpected code %v", payload["code"])
	}
}

func TestListLeadsFiltersByStatusWithGlobalStats(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/leads", validLeadBody)
	perform(t, handler, http.MethodPost, "/api/leads",
		`{"name":"ООО СтройТех","email":"office@stroyteh.ru","phone":"+7 800 100-20-30","message":"Запрос КП","status":"completed"}`)

	recorder := perform(t, handler, http.MethodGet, "/api/leads?status=completed", "")

	payload := decodeEnvelope(t, recorder)
	data := payload["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected one completed lead, got %d", len(data))
	}
	stats := payload["stats"].(map[string]any)
	if stats["total"] != float64(2) || stats["new"] != float64(1) || stats["completed"] != float64(1) {
		t.Fatalf("unexpected stats %v", stats)
	}
}

func TestUpdateLeadMergesPartialBody(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/leads", validLeadBody)

	recorder := perform(t, handler, http.MethodPut, "/api/leads",
		`{"id":"record-0001","status":"in_progress"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeEnvelope(t, recorder)
	data := payload["data"].(map[string]any)
	if data["status"] != "in_progress" {
		t.Fatalf("unexpected status %v", data["status"])
	}
	if data["name"] != "Иван Петров" {
		t.Fatalf("expected omitted name to survive, got %v", data["name"])
	}
}

func TestUpdateLeadRejectsUnknownStatus(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/leads", validLeadBody)

	recorder := perform(t, handler, http.MethodPut, "/api/leads",
		`{"id":"record-0001","status":"archived"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	if payload["code"] != "leads.update.invalid_status" {
		t.Fatalf("unexpected code %v", payload["code"])
	}
}

func TestUpdateUnknownLeadReturns404(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodPut, "/api/leads",
		`{"id":"missing","status":"completed"}`)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestDeleteLeadRequiresID(t *testing.T) {
	handler := newTestHandler(t)

	recorder := perform(t, handler, http.MethodDelete, "/api/leads", "")

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	payload := decodeEnvelope(t, recorder)
	if payload["error"] != "missing_id" {
		t.Fatalf("unexpected error %v", payload["error"])
	}
}

func TestDeleteLeadRemovesRecord(t *testing.T) {
	handler := newTestHandler(t)

	perform(t, handler, http.MethodPost, "/api/leads", validLeadBody)

	recorder := perform(t, handler, http.MethodDelete, "/api/leads?id=record-0001", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}

	listing := perform(t, handler, http.MethodGet, "/api/leads", "")
	payload := decodeEnvelope(t, listing)
	if data := payload["data"].([]any); len(data) != 0 {
		t.Fatalf("expected empty listing, got %v", data)
	}
}
