package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed feeddata
var feeddata embed.FS

const (
	FeedClientID     = "fakeClientID"
	FeedClientSecret = "fakeClientSecret"
	feedAccessToken  = "fake_access_token"
)

// FakeFeedServer mimics the upstream live-score provider, including the
// OAuth2 token endpoint used by the client credentials flow.
type FakeFeedServer struct {
	s *httptest.Server
}

func NewFakeFeedServer() *FakeFeedServer {
	r := chi.NewRouter()
	r.Post("/oauth/token", feedTokenHandler)
	r.Route("/v1", func(r chi.Router) {
		r.Use(requireBearerToken)
		r.Get("/live", liveMatchesHandler)
	})

	return &FakeFeedServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeFeedServer) Close() {
	f.s.Close()
}

func (f *FakeFeedServer) URL() string {
	return f.s.URL
}

func (f *FakeFeedServer) TokenURL() string {
	return fmt.Sprintf("%s/oauth/token", f.s.URL)
}

func feedTokenHandler(w http.ResponseWriter, r *http.Request) {
	id, secret, ok := r.BasicAuth()
	if !ok {
		if err := r.ParseForm(); err == nil {
			id, secret = r.PostForm.Get("client_id"), r.PostForm.Get("client_secret")
		}
	}
	if id != FeedClientID || secret != FeedClientSecret {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid_client"}`))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{
		"access_token": "%s",
		"token_type": "bearer",
		"expires_in": 3600
	}`, feedAccessToken)))
}

// Requests without a token get a 401, so tests can tell the client
// credentials flow was used.
func requireBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+feedAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func liveMatchesHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "live.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := feeddata.ReadFile(fmt.Sprintf("feeddata/%s", name))
	if err != nil {
		log.Printf("error reading feeddata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
