package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/fragbase/fragbase"
	"github.com/fragbase/fragbase/application/service"
	v1 "github.com/fragbase/fragbase/infrastructure/api/v1"
	"github.com/fragbase/fragbase/infrastructure/api/v1/dto"
)

func newTestClient(t *testing.T) *fragbase.Client {
	t.Helper()
	tmpDir := t.TempDir()
	client, err := fragbase.New(
		fragbase.WithSQLite(filepath.Join(tmpDir, "test.db")),
		fragbase.WithMediaDir(filepath.Join(tmpDir, "media")),
		fragbase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedFragment(t *testing.T, client *fragbase.Client, title string) int64 {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	created, err := client.Fragments.Create(req.Context(), service.FragmentCreateParams{
		Title:   title,
		Content: "content of " + title,
	})
	if err != nil {
		t.Fatalf("seed fragment: %v", err)
	}
	return created.ID()
}

func TestFragmentsRouter_List(t *testing.T) {
	client := newTestClient(t)
	seedFragment(t, client, "first")
	seedFragment(t, client, "second")

	routes := v1.NewFragmentsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodGet, "/?page_size=1", nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.FragmentListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(resp.Data))
	}
	if resp.Meta.Total != 2 {
		t.Errorf("meta.total = %d, want 2", resp.Meta.Total)
	}
	if resp.Data[0].Title != "first" {
		t.Errorf("data[0].title = %q, want %q", resp.Data[0].Title, "first")
	}
}

func TestFragmentsRouter_Get(t *testing.T) {
	client := newTestClient(t)
	id := seedFragment(t, client, "lookup")

	routes := v1.NewFragmentsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%d", id), nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.FragmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Title != "lookup" {
		t.Errorf("title = %q, want %q", resp.Data.Title, "lookup")
	}
}

func TestFragmentsRouter_GetNotFound(t *testing.T) {
	client := newTestClient(t)

	routes := v1.NewFragmentsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodGet, "/999", nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestFragmentsRouter_GetBadID(t *testing.T) {
	client := newTestClient(t)

	routes := v1.NewFragmentsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodGet, "/not-a-number", nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFragmentsRouter_Create(t *testing.T) {
	client := newTestClient(t)

	routes := v1.NewFragmentsRouter(client).Routes()

	body, _ := json.Marshal(dto.FragmentCreateRequest{Title: "posted", Content: "body"})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var resp dto.FragmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.ID == 0 {
		t.Error("expected a store-assigned id")
	}
	if resp.Data.OriginID != nil {
		t.Error("API-created fragments must not carry an origin id")
	}
}

func TestFragmentsRouter_CreateMissingTitle(t *testing.T) {
	client := newTestClient(t)

	routes := v1.NewFragmentsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"content":"only"}`)))
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestTagsRouter_List(t *testing.T) {
	client := newTestClient(t)

	routes := v1.NewTagsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.TagListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("len(data) = %d, want 0", len(resp.Data))
	}
}
