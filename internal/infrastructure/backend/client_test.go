package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopease/console-gateway/internal/core/domain"
)

func TestClient_Login_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/Auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["email"] != "ops@example.com" || req["password"] != "secret" {
			t.Fatalf("unexpected credentials: %v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"token": "tok-1", "refreshToken": "ref-1"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	pair, err := client.Login(context.Background(), "ops@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.Token != "tok-1" || pair.RefreshToken != "ref-1" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
}

func TestClient_Login_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "bad credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Login(context.Background(), "ops@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClient_Login_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, time.Second)
	_, err := client.Login(context.Background(), "ops@example.com", "secret")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestClient_FetchProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/Auth/me" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"id": "u1", "email": "ops@example.com", "role": "Admin"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	profile, err := client.FetchProfile(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if profile.ID != "u1" || profile.Role != "Admin" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestClient_FetchProfile_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchProfile(context.Background(), "stale-token")
	if !errors.Is(err, domain.ErrProfileFetchFailed) {
		t.Fatalf("expected ErrProfileFetchFailed, got %v", err)
	}
}

func TestClient_FetchProfile_BadEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchProfile(context.Background(), "tok-1")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}
