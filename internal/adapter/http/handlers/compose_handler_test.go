package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"chantierplus/internal/adapter/http/handlers/mocks"
	"chantierplus/internal/domain/draft"
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/domain/signature"
	"chantierplus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newComposeRouter(t *testing.T) (*gin.Engine, *mocks.MockIComposeAvenantUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIComposeAvenantUseCase(ctrl)
	h := NewComposeHandler(uc)

	r := gin.New()
	r.POST("/v1/chantiers/:chantier_id/avenants/drafts", h.OpenDraft)
	r.GET("/v1/avenants/drafts/:draft_id", h.GetDraft)
	r.PATCH("/v1/avenants/drafts/:draft_id", h.UpdateField)
	r.DELETE("/v1/avenants/drafts/:draft_id", h.Abandon)
	r.POST("/v1/avenants/drafts/:draft_id/dictation", h.Dictate)
	r.PUT("/v1/avenants/drafts/:draft_id/photo", h.AttachPhoto)
	r.DELETE("/v1/avenants/drafts/:draft_id/photo", h.RemovePhoto)
	r.PUT("/v1/avenants/drafts/:draft_id/signature", h.Sign)
	r.DELETE("/v1/avenants/drafts/:draft_id/signature", h.ClearSignature)
	r.POST("/v1/avenants/drafts/:draft_id/submit", h.Submit)
	return r, uc
}

func draftView(id string) usecase.DraftView {
	d := draft.New(id, "c-1", []string{"client@example.com"})
	d.Description = "Ajout prise"
	d.FixedPrice = "150"
	return usecase.DraftView{Draft: d, Evaluation: draft.Evaluate(d)}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Code
}

func multipartFile(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestComposeHandler_OpenDraft(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().Open(gomock.Any(), "c-1", gomock.Nil()).Return(draftView("d-1"), nil)

		w := serve(r, httptest.NewRequest(http.MethodPost, "/v1/chantiers/c-1/avenants/drafts", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID         string `json:"id"`
			Evaluation struct {
				CanSign bool     `json:"can_sign"`
				Total   float64  `json:"total"`
				Missing []string `json:"missing"`
			} `json:"evaluation"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.ID != "d-1" || body.Evaluation.CanSign || body.Evaluation.Total != 150 || len(body.Evaluation.Missing) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("with recipients", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().Open(gomock.Any(), "c-1", []string{"a@b.fr"}).Return(draftView("d-1"), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/chantiers/c-1/avenants/drafts", bytes.NewBufferString(`{"recipients":["a@b.fr"]}`))
		req.Header.Set("Content-Type", "application/json")
		if w := serve(r, req); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("bad json", func(t *testing.T) {
		r, _ := newComposeRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/chantiers/c-1/avenants/drafts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		if w := serve(r, req); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestComposeHandler_UpdateField(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		r, _ := newComposeRouter(t)
		req := httptest.NewRequest(http.MethodPatch, "/v1/avenants/drafts/d-1", bytes.NewBufferString(`{"value":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		if w := serve(r, req); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("signature discarded flag", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		view := draftView("d-1")
		view.SignatureDiscarded = true
		uc.EXPECT().UpdateField(gomock.Any(), "d-1", "hours", "4").Return(view, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/avenants/drafts/d-1", bytes.NewBufferString(`{"field":"Hours","value":"4"}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"signature_discarded":true`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrUnknownField, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrDraftNotFound, http.StatusNotFound, "DRAFT_NOT_FOUND"},
		{usecase.ErrSubmissionInFlight, http.StatusConflict, "SUBMISSION_IN_FLIGHT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			r, uc := newComposeRouter(t)
			uc.EXPECT().UpdateField(gomock.Any(), "d-1", "description", "x").Return(usecase.DraftView{}, tc.err)

			req := httptest.NewRequest(http.MethodPatch, "/v1/avenants/drafts/d-1", bytes.NewBufferString(`{"field":"description","value":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			w := serve(r, req)
			if w.Code != tc.status || errorCode(t, w) != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestComposeHandler_Uploads(t *testing.T) {
	t.Run("dictation", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().Dictate(gomock.Any(), "d-1", "rec.webm", []byte("audio")).Return(draftView("d-1"), nil)

		body, ct := multipartFile(t, "file", "rec.webm", []byte("audio"))
		req := httptest.NewRequest(http.MethodPost, "/v1/avenants/drafts/d-1/dictation", body)
		req.Header.Set("Content-Type", ct)
		if w := serve(r, req); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("dictation upstream failure", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().Dictate(gomock.Any(), "d-1", gomock.Any(), gomock.Any()).
			Return(usecase.DraftView{}, fmt.Errorf("%w: transcription: 503", usecase.ErrUpstreamRejected))

		body, ct := multipartFile(t, "file", "rec.webm", []byte("audio"))
		req := httptest.NewRequest(http.MethodPost, "/v1/avenants/drafts/d-1/dictation", body)
		req.Header.Set("Content-Type", ct)
		w := serve(r, req)
		if w.Code != http.StatusBadGateway || errorCode(t, w) != "UPSTREAM_REJECTED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		r, _ := newComposeRouter(t)
		body, ct := multipartFile(t, "other", "a.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPut, "/v1/avenants/drafts/d-1/photo", body)
		req.Header.Set("Content-Type", ct)
		if w := serve(r, req); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("photo rejected", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().AttachPhoto(gomock.Any(), "d-1", "doc.pdf", []byte("%PDF")).
			Return(usecase.DraftView{}, fmt.Errorf("%w: unsupported type application/pdf", usecase.ErrFileRejected))

		body, ct := multipartFile(t, "file", "doc.pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPut, "/v1/avenants/drafts/d-1/photo", body)
		req.Header.Set("Content-Type", ct)
		w := serve(r, req)
		if w.Code != http.StatusUnprocessableEntity || errorCode(t, w) != "FILE_REJECTED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("remove photo", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().RemovePhoto(gomock.Any(), "d-1").Return(draftView("d-1"), nil)
		if w := serve(r, httptest.NewRequest(http.MethodDelete, "/v1/avenants/drafts/d-1/photo", nil)); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestComposeHandler_Signature(t *testing.T) {
	t.Run("blocked", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().Sign(gomock.Any(), "d-1", gomock.AssignableToTypeOf(signature.Canvas{})).DoAndReturn(
			func(_ context.Context, _ string, c signature.Canvas) (usecase.DraftView, error) {
				if c.Width != 300 || len(c.Strokes) != 1 || len(c.Strokes[0]) != 2 {
					t.Errorf("unexpected canvas: %+v", c)
				}
				return usecase.DraftView{}, usecase.ErrValidationBlocked
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/avenants/drafts/d-1/signature",
			bytes.NewBufferString(`{"width":300,"height":150,"strokes":[[{"x":1,"y":2},{"x":30,"y":40}]]}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)
		if w.Code != http.StatusConflict || errorCode(t, w) != "VALIDATION_BLOCKED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("clear", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().ClearSignature(gomock.Any(), "d-1").Return(draftView("d-1"), nil)
		if w := serve(r, httptest.NewRequest(http.MethodDelete, "/v1/avenants/drafts/d-1/signature", nil)); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestComposeHandler_Submit(t *testing.T) {
	t.Run("precondition failed", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "d-1").Return(entities.Avenant{}, fmt.Errorf("%w: signature missing", usecase.ErrPreconditionFailed))

		w := serve(r, httptest.NewRequest(http.MethodPost, "/v1/avenants/drafts/d-1/submit", nil))
		if w.Code != http.StatusPreconditionFailed || errorCode(t, w) != "PRECONDITION_FAILED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newComposeRouter(t)
		price := 150.0
		uc.EXPECT().Submit(gomock.Any(), "d-1").Return(entities.Avenant{
			ID: "av-1", ChantierID: "c-1", Type: entities.PricingModeFixedPrice, Price: &price, TotalHT: 150, Status: entities.AvenantStatusSigned,
		}, nil)

		w := serve(r, httptest.NewRequest(http.MethodPost, "/v1/avenants/drafts/d-1/submit", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "av-1" || body["chantier_id"] != "c-1" || body["total_ht"] != 150.0 {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["hours"]; ok {
			t.Fatalf("inactive branch should be omitted: %v", body)
		}
	})
}

func TestComposeHandler_Abandon(t *testing.T) {
	r, uc := newComposeRouter(t)
	uc.EXPECT().Abandon(gomock.Any(), "d-1").Return(nil)
	uc.EXPECT().Abandon(gomock.Any(), "d-2").Return(usecase.ErrDraftNotFound)

	if w := serve(r, httptest.NewRequest(http.MethodDelete, "/v1/avenants/drafts/d-1", nil)); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := serve(r, httptest.NewRequest(http.MethodDelete, "/v1/avenants/drafts/d-2", nil)); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestComposeHandler_GetDraft(t *testing.T) {
	r, uc := newComposeRouter(t)
	uc.EXPECT().Get(gomock.Any(), "d-1").Return(draftView("d-1"), nil)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/avenants/drafts/d-1", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"fixed_price":"150"`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
