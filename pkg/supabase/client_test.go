package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		URL:     srv.URL,
		APIKey:  "anon-key",
		Timeout: 5 * time.Second,
	})
}

func TestSelect(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/rest/v1/recipes" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("missing apikey header, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer anon-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if got := r.Header.Get("Range"); got != "10-14" {
			t.Errorf("unexpected range header %q", got)
		}
		if got := r.URL.Query().Get("order"); got != "created_at.desc" {
			t.Errorf("unexpected order param %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"r1"},{"id":"r2"}]`))
	})

	var rows []struct {
		ID string `json:"id"`
	}
	err := client.Select(context.Background(), "recipes",
		map[string]string{"order": "created_at.desc"}, 5, 10, &rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != "r1" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestInsert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Prefer"); got != "return=minimal" {
			t.Errorf("unexpected prefer header %q", got)
		}
		var body []map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("body did not decode as array: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Insert(context.Background(), "recipes",
		[]map[string]string{{"title": "Pancakes"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpsertConflictParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("on_conflict"); got != "fingerprint" {
			t.Errorf("unexpected on_conflict %q", got)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Upsert(context.Background(), "recipes", "fingerprint",
		[]map[string]string{{"title": "Pancakes"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteRefusesUnfiltered(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called for unfiltered delete")
	})
	if err := client.Delete(context.Background(), "recipes", nil); err == nil {
		t.Fatal("expected error for unfiltered delete")
	}
}

func TestCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Prefer"); got != "count=exact" {
			t.Errorf("unexpected prefer header %q", got)
		}
		w.Header().Set("Content-Range", "0-0/1234")
		w.Write([]byte(`[]`))
	})

	n, err := client.Count(context.Background(), "recipes", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1234 {
		t.Errorf("expected 1234, got %d", n)
	}
}

func TestAPIErrorSurfacesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"duplicate key value"}`))
	})

	err := client.Insert(context.Background(), "recipes",
		[]map[string]string{{"title": "Pancakes"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "supabase API error: 409: duplicate key value"; err.Error() != want {
		t.Errorf("unexpected error %q, want %q", err.Error(), want)
	}
}
