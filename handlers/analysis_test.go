package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"handymatch/models"
	"handymatch/services/session"
	"handymatch/services/view"
)

// stubAnalysis records what it was fed and returns a canned result.
type stubAnalysis struct {
	called bool
	data   []byte
	mime   string
	result models.AnalysisResult
}

func (s *stubAnalysis) AnalyzeIssue(ctx context.Context, imageData []byte, mimeType string) models.AnalysisResult {
	s.called = true
	s.data = imageData
	s.mime = mimeType
	return s.result
}

func analysisRouter(t *testing.T, stub *stubAnalysis, views *view.Service, maxBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalysisHandler(stub, views, maxBytes)
	r.POST("/api/analysis", h.AnalyzeImageHandler)
	return r
}

func multipartImage(t *testing.T, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "issue.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestAnalyzeImageReturnsResult(t *testing.T) {
	stub := &stubAnalysis{result: models.AnalysisResult{
		Category:        models.CategoryPlumber,
		CategoryLabel:   "Encanador",
		Description:     "Vazamento sob a pia",
		SuggestedAction: "Feche o registro",
		Confidence:      0.9,
	}}
	views := view.NewService(session.NewMemoryStore(), time.Minute)
	r := analysisRouter(t, stub, views, 1<<20)

	body, contentType := multipartImage(t, []byte("fake-jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !stub.called {
		t.Fatal("expected the analysis service to be called")
	}
	if string(stub.data) != "fake-jpeg-bytes" {
		t.Fatalf("service received wrong payload: %q", stub.data)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Category != models.CategoryPlumber {
		t.Fatalf("expected plumber, got %s", result.Category)
	}
}

func TestAnalyzeImageRecordsOnViewSession(t *testing.T) {
	stub := &stubAnalysis{result: models.AnalysisResult{
		Category:        models.CategoryElectrician,
		CategoryLabel:   "Eletricista",
		Description:     "d",
		SuggestedAction: "a",
		Confidence:      0.8,
	}}
	views := view.NewService(session.NewMemoryStore(), time.Minute)
	ctx := context.Background()
	viewSess, err := views.StartSession(ctx)
	if err != nil {
		t.Fatalf("start view session: %v", err)
	}
	r := analysisRouter(t, stub, views, 1<<20)

	body, contentType := multipartImage(t, []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/api/analysis?sessionID="+viewSess.ID, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	viewSess, err = views.Get(ctx, viewSess.ID)
	if err != nil {
		t.Fatalf("reload view session: %v", err)
	}
	if viewSess.CurrentView != models.ViewProList {
		t.Fatalf("expected PRO_LIST after analysis, got %s", viewSess.CurrentView)
	}
	if viewSess.ActiveFilter == nil || *viewSess.ActiveFilter != models.CategoryElectrician {
		t.Fatalf("expected electrician filter, got %+v", viewSess.ActiveFilter)
	}
}

func TestAnalyzeImageRejectsOversizedUpload(t *testing.T) {
	stub := &stubAnalysis{}
	views := view.NewService(session.NewMemoryStore(), time.Minute)
	r := analysisRouter(t, stub, views, 16)

	body, contentType := multipartImage(t, bytes.Repeat([]byte("x"), 64))
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.called {
		t.Fatal("oversized uploads must be rejected before the analysis call")
	}
}

func TestAnalyzeImageMissingFile(t *testing.T) {
	stub := &stubAnalysis{}
	views := view.NewService(session.NewMemoryStore(), time.Minute)
	r := analysisRouter(t, stub, views, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.called {
		t.Fatal("the analysis service must not run without an image")
	}
}
