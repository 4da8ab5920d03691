package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHandleDecodeARM(t *testing.T) {
	s := NewServer(0)

	body, _ := json.Marshal(DecodeRequest{Word: 0xE3A00001, Mode: "arm", Profile: "v5te"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp DecodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Mnemonic != "mov r0, #0x1" || !resp.Recognized {
		t.Errorf("got %+v", resp)
	}
}

func TestHandleDecodeRejectsUnknownProfile(t *testing.T) {
	s := NewServer(0)

	body, _ := json.Marshal(DecodeRequest{Word: 0, Mode: "arm", Profile: "bogus"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSessionLifecycle(t *testing.T) {
	s := NewServer(0)

	data := []byte{0x01, 0x00, 0xA0, 0xE3} // mov r0, #0x1
	createBody, _ := json.Marshal(SessionCreateRequest{
		DataBase64: base64.StdEncoding.EncodeToString(data),
		Base:       0x8000,
		Mode:       "arm",
		Profile:    "v5te",
	})
	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(createBody))
	createRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(createRec, createReq)

	if createRec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", createRec.Code, createRec.Body.String())
	}
	var created SessionCreateResponse
	if err := json.Unmarshal(createRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("expected non-empty session ID")
	}

	// Decoding runs in a goroutine; give it a moment to finish for this tiny buffer.
	time.Sleep(50 * time.Millisecond)

	entriesReq := httptest.NewRequest(http.MethodGet, "/api/v1/session/"+created.SessionID+"/entries", nil)
	entriesRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(entriesRec, entriesReq)

	if entriesRec.Code != http.StatusOK {
		t.Fatalf("entries status = %d, want 200: %s", entriesRec.Code, entriesRec.Body.String())
	}
	var entriesResp SessionEntriesResponse
	if err := json.Unmarshal(entriesRec.Body.Bytes(), &entriesResp); err != nil {
		t.Fatalf("decode entries response: %v", err)
	}
	if len(entriesResp.Entries) != 1 || entriesResp.Entries[0].Mnemonic != "mov r0, #0x1" {
		t.Errorf("got entries %+v", entriesResp.Entries)
	}

	destroyReq := httptest.NewRequest(http.MethodDelete, "/api/v1/session/"+created.SessionID, nil)
	destroyRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(destroyRec, destroyReq)
	if destroyRec.Code != http.StatusNoContent {
		t.Fatalf("destroy status = %d, want 204", destroyRec.Code)
	}

	notFoundReq := httptest.NewRequest(http.MethodGet, "/api/v1/session/"+created.SessionID, nil)
	notFoundRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(notFoundRec, notFoundReq)
	if notFoundRec.Code != http.StatusNotFound {
		t.Fatalf("status after destroy = %d, want 404", notFoundRec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
