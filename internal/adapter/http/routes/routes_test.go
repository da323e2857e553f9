package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chantierplus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestAvenantRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addAvenantRoutes(v1, handlers.NewComposeHandler(nil), handlers.NewAvenantHandler(nil))

	want := map[string]bool{
		"GET /v1/ping":                                    true,
		"POST /v1/chantiers/:chantier_id/avenants/drafts": true,
		"GET /v1/chantiers/:chantier_id/avenants":         true,
		"GET /v1/avenants/drafts/:draft_id":               true,
		"PATCH /v1/avenants/drafts/:draft_id":             true,
		"DELETE /v1/avenants/drafts/:draft_id":            true,
		"POST /v1/avenants/drafts/:draft_id/dictation":    true,
		"PUT /v1/avenants/drafts/:draft_id/photo":         true,
		"DELETE /v1/avenants/drafts/:draft_id/photo":      true,
		"PUT /v1/avenants/drafts/:draft_id/signature":     true,
		"DELETE /v1/avenants/drafts/:draft_id/signature":  true,
		"POST /v1/avenants/drafts/:draft_id/submit":       true,
		"GET /v1/avenants/:avenant_id":                    true,
		"POST /v1/avenants/:avenant_id/send-email":        true,
	}
	for _, ri := range r.Routes() {
		delete(want, ri.Method+" "+ri.Path)
	}
	if len(want) != 0 {
		t.Fatalf("missing routes: %v", want)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
