package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/model"
)

func testConfig() config.Config {
	return config.Config{
		Port:              "0",
		Env:               "test",
		MaxPasswordLength: 128,
		RateLimitRPS:      100,
		RateLimitBurst:    100,
		CORSOrigins:       []string{"https://app.example"},
	}
}

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(New(ctx, cfg))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRouter_GenerateThenAnalyze(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Post(srv.URL+"/api/v1/generate", "application/json", strings.NewReader(`{"length": 20}`))
	if err != nil {
		t.Fatalf("POST generate: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d, want 200", resp.StatusCode)
	}
	var gen model.GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		t.Fatalf("decoding generate response: %v", err)
	}

	body, _ := json.Marshal(model.AnalyzeRequest{Password: gen.Password})
	resp2, err := http.Post(srv.URL+"/api/v1/analyze", "application/json", strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("POST analyze: %v", err)
	}
	defer resp2.Body.Close()

	var analyzed model.AnalyzeResponse
	if err := json.NewDecoder(resp2.Body).Decode(&analyzed); err != nil {
		t.Fatalf("decoding analyze response: %v", err)
	}
	if analyzed.Analysis.Score != gen.Analysis.Score {
		t.Errorf("re-analysis score = %d, want %d", analyzed.Analysis.Score, gen.Analysis.Score)
	}
	if analyzed.Analysis.Length != 20 {
		t.Errorf("length = %d, want 20", analyzed.Analysis.Length)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/api/v1/generate")
	if err != nil {
		t.Fatalf("GET generate: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/analyze", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS analyze: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want https://app.example", got)
	}
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	srv := newTestServer(t, cfg)

	var last int
	for i := 0; i < 2; i++ {
		resp, err := http.Post(srv.URL+"/api/v1/analyze", "application/json", strings.NewReader(`{"password":"x"}`))
		if err != nil {
			t.Fatalf("POST analyze: %v", err)
		}
		resp.Body.Close()
		last = resp.StatusCode
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", last)
	}
}

func postAnalyzeFrom(t *testing.T, url, forwardedFor string) int {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, url+"/api/v1/analyze", strings.NewReader(`{"password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST analyze: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestRouter_RateLimitIgnoresForwardedFor(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	srv := newTestServer(t, cfg)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, postAnalyzeFrom(t, srv.URL, fmt.Sprintf("10.0.0.%d", i)))
	}

	if codes[0] != http.StatusOK {
		t.Errorf("first request status = %d, want 200", codes[0])
	}
	for i, code := range codes[1:] {
		if code != http.StatusTooManyRequests {
			t.Errorf("request %d status = %d, want 429 (all %v)", i+1, code, codes)
		}
	}
}

func TestRouter_RateLimitTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	cfg.TrustProxy = true
	srv := newTestServer(t, cfg)

	if code := postAnalyzeFrom(t, srv.URL, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("first client status = %d, want 200", code)
	}
	if code := postAnalyzeFrom(t, srv.URL, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", code)
	}
	if code := postAnalyzeFrom(t, srv.URL, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("repeat client status = %d, want 429", code)
	}
}
