package scoring

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, store AssetStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if owner := c.GetHeader("X-Test-Owner"); owner != "" {
			c.Set("userId", owner)
		}
		c.Next()
	})
	NewHandler(NewEngine(store, nil)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestHandlerScan(t *testing.T) {
	store := newFakeStore(Asset{ID: "asset-1", OwnerID: "owner-a", Content: map[string]any{"text": "react"}})
	router := newTestRouter(t, store)

	body := bytes.NewBufferString(`{"jobText":"React React React Node Node SQL"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/asset-1/scan", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Owner", "owner-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, key := range []string{"assetId", "matchScorePct", "presentKeywords", "missingKeywords", "suggestions", "totalJobKeywords"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("expected key %q in response %v", key, got)
		}
	}
	if got["matchScorePct"] != float64(50) {
		t.Fatalf("expected matchScorePct 50, got %v", got["matchScorePct"])
	}
}

func TestHandlerNotOwnedReturns404(t *testing.T) {
	store := newFakeStore(Asset{ID: "asset-1", OwnerID: "owner-a", Content: "email"})
	router := newTestRouter(t, store)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/v1/assets/asset-1/scan", `{"jobText":"go go"}`},
		{http.MethodPost, "/api/v1/assets/asset-1/duplicate-scan", `{"jobText":"go go"}`},
		{http.MethodGet, "/api/v1/assets/asset-1/ats", ""},
		{http.MethodPost, "/api/v1/assets/asset-1/critique", ""},
		{http.MethodGet, "/api/v1/assets/missing/ats", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Test-Owner", "owner-b")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.path, resp.Code)
		}
		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if body.Error.Code != "not_found" {
			t.Fatalf("expected not_found code, got %q", body.Error.Code)
		}
	}
}

func TestHandlerRejectsOversizedJobText(t *testing.T) {
	store := newFakeStore(Asset{ID: "asset-1", OwnerID: "owner-a"})
	router := newTestRouter(t, store)

	payload, err := json.Marshal(scanRequest{JobText: strings.Repeat("a", maxJobTextLength+1)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/asset-1/scan", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Owner", "owner-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestHandlerCritiquePersistsScore(t *testing.T) {
	store := newFakeStore(Asset{ID: "asset-1", OwnerID: "owner-a"})
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/asset-1/critique", nil)
	req.Header.Set("X-Test-Owner", "owner-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var report CritiqueReport
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	score, ok := store.score("asset-1")
	if !ok || score != report.OverallScore {
		t.Fatalf("expected persisted score %d, got %d (present=%v)", report.OverallScore, score, ok)
	}
}
