package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	limiter := New(0, 2)

	handler := limiter.Middleware(ClientAddress)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res.Code
	}

	expected := []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}
	for i, e := range expected {
		if g := send("10.0.0.1:4321"); e != g {
			t.Errorf("request #%d: expected status '%v', got '%v'", i, e, g)
		}
	}

	// Same host, other port
	if e, g := http.StatusTooManyRequests, send("10.0.0.1:9999"); e != g {
		t.Errorf("same host: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNoContent, send("10.0.0.2:4321"); e != g {
		t.Errorf("other host: expected status '%v', got '%v'", e, g)
	}
}

func TestClientAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "[::1]:8080"
	key, err := ClientAddress(req)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "::1", key; e != g {
		t.Errorf("key: expected '%v', got '%v'", e, g)
	}

	req.RemoteAddr = ""
	if _, err := ClientAddress(req); err == nil {
		t.Errorf("ClientAddress(): expected an error")
	}
}
