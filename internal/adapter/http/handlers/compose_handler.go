package handlers

import (
	request "chantierplus/internal/adapter/http/dto/request"
	response "chantierplus/internal/adapter/http/dto/response"
	"chantierplus/internal/usecase"
	"chantierplus/pkg"
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds what is read from a multipart upload. Whisper accepts
// up to 25 MB; photos are checked against their own limit by the use case.
const maxUploadBytes int64 = 25 << 20

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingFile         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Multipart field \"file\" is required", http.StatusBadRequest)
	errFileTooLarge        = pkg.NewDomainErrorSimple("FILE_REJECTED", "File is too large", http.StatusUnprocessableEntity)
)

// ComposeHandler handles the avenant composition flow: one draft per session,
// edited field by field until it is signed and submitted.

type ComposeHandler struct {
	usecase usecase.IComposeAvenantUseCase
}

func NewComposeHandler(uc usecase.IComposeAvenantUseCase) *ComposeHandler {
	return &ComposeHandler{usecase: uc}
}

// OpenDraft godoc
// @Summary  Open an avenant draft on a chantier
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    chantier_id  path  string                    true   "Chantier ID"
// @Param    body         body  request.OpenDraftRequest  false  "Recipients"
// @Success  201  {object}  response.DraftResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /chantiers/{chantier_id}/avenants/drafts [post]
func (h *ComposeHandler) OpenDraft(c *gin.Context) {
	var payload request.OpenDraftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
			return
		}
	}

	view, err := h.usecase.Open(c.Request.Context(), c.Param("chantier_id"), payload.Recipients)
	if err != nil {
		writeComposeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDraftView(view))
}

// GetDraft godoc
// @Summary  Draft state and permissions
// @Tags     drafts
// @Produce  json
// @Param    draft_id  path  string  true  "Draft ID"
// @Success  200  {object}  response.DraftResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id} [get]
func (h *ComposeHandler) GetDraft(c *gin.Context) {
	h.respondDraft(c, func(ctx context.Context, id string) (usecase.DraftView, error) {
		return h.usecase.Get(ctx, id)
	})
}

// UpdateField godoc
// @Summary  Set one raw field of a draft
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    draft_id  path  string                      true  "Draft ID"
// @Param    body      body  request.UpdateFieldRequest  true  "Field and raw value"
// @Success  200  {object}  response.DraftResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id} [patch]
func (h *ComposeHandler) UpdateField(c *gin.Context) {
	var payload request.UpdateFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, id string) (usecase.DraftView, error) {
		return h.usecase.UpdateField(ctx, id, payload.ResolveField(), payload.Value)
	})
}

// Dictate godoc
// @Summary  Transcribe a recording and append it to the description
// @Tags     drafts
// @Accept   multipart/form-data
// @Produce  json
// @Param    draft_id  path      string  true  "Draft ID"
// @Param    file      formData  file    true  "Audio recording"
// @Success  200  {object}  response.DraftResponse
// @Failure  502  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id}/dictation [post]
func (h *ComposeHandler) Dictate(c *gin.Context) {
	filename, data, appErr := readUpload(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, id string) (usecase.DraftView, error) {
		return h.usecase.Dictate(ctx, id, filename, data)
	})
}

// AttachPhoto godoc
// @Summary  Upload the photo proof of a draft
// @Tags     drafts
// @Accept   multipart/form-data
// @Produce  json
// @Param    draft_id  path      string  true  "Draft ID"
// @Param    file      formData  file    true  "JPEG, PNG, GIF or WebP, 10 MB max"
// @Success  200  {object}  response.DraftResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id}/photo [put]
func (h *ComposeHandler) AttachPhoto(c *gin.Context) {
	filename, data, appErr := readUpload(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, id string) (usecase.DraftView, error) {
		return h.usecase.AttachPhoto(ctx, id, filename, data)
	})
}

// RemovePhoto godoc
// @Summary  Remove the photo proof of a draft
// @Tags     drafts
// @Produce  json
// @Param    draft_id  path  string  true  "Draft ID"
// @Success  200  {object}  response.DraftResponse
// @Router   /avenants/drafts/{draft_id}/photo [delete]
func (h *ComposeHandler) RemovePhoto(c *gin.Context) {
	h.respondDraft(c, h.usecase.RemovePhoto)
}

// Sign godoc
// @Summary  Capture the client signature
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    draft_id  path  string                    true  "Draft ID"
// @Param    body      body  request.SignatureRequest  true  "Pad strokes"
// @Success  200  {object}  response.DraftResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id}/signature [put]
func (h *ComposeHandler) Sign(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, id string) (usecase.DraftView, error) {
		return h.usecase.Sign(ctx, id, payload.ToCanvas())
	})
}

// ClearSignature godoc
// @Summary  Clear the signature pad
// @Tags     drafts
// @Produce  json
// @Param    draft_id  path  string  true  "Draft ID"
// @Success  200  {object}  response.DraftResponse
// @Router   /avenants/drafts/{draft_id}/signature [delete]
func (h *ComposeHandler) ClearSignature(c *gin.Context) {
	h.respondDraft(c, h.usecase.ClearSignature)
}

// Submit godoc
// @Summary  Persist a signed draft as an avenant
// @Tags     drafts
// @Produce  json
// @Param    draft_id  path  string  true  "Draft ID"
// @Success  201  {object}  response.AvenantResponse
// @Failure  412  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id}/submit [post]
func (h *ComposeHandler) Submit(c *gin.Context) {
	draftID := c.Param("draft_id")
	log.Printf("[avenant][handler] submit start draft_id=%s", draftID)

	created, err := h.usecase.Submit(c.Request.Context(), draftID)
	if err != nil {
		log.Printf("[avenant][handler] submit failed draft_id=%s err=%v", draftID, err)
		writeComposeError(c, err)
		return
	}
	log.Printf("[avenant][handler] submit success draft_id=%s avenant_id=%s", draftID, created.ID)
	c.JSON(http.StatusCreated, response.FromAvenant(created))
}

// Abandon godoc
// @Summary  Abandon a draft
// @Tags     drafts
// @Param    draft_id  path  string  true  "Draft ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /avenants/drafts/{draft_id} [delete]
func (h *ComposeHandler) Abandon(c *gin.Context) {
	if err := h.usecase.Abandon(c.Request.Context(), c.Param("draft_id")); err != nil {
		writeComposeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ComposeHandler) respondDraft(c *gin.Context, op func(ctx context.Context, draftID string) (usecase.DraftView, error)) {
	view, err := op(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		writeComposeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(view))
}

func readUpload(c *gin.Context) (string, []byte, *pkg.AppError) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, errMissingFile
	}
	if fh.Size > maxUploadBytes {
		return "", nil, errFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return "", nil, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	if int64(len(data)) > maxUploadBytes {
		return "", nil, errFileTooLarge
	}
	return fh.Filename, data, nil
}

func writeComposeError(c *gin.Context, err error) {
	appErr := mapComposeError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[avenant][handler] request failed path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapComposeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChantierID), errors.Is(err, usecase.ErrInvalidDraftID),
		errors.Is(err, usecase.ErrUnknownField), errors.Is(err, usecase.ErrInvalidRecipient), errors.Is(err, usecase.ErrEmptyAudio):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidationBlocked):
		return pkg.NewDomainErrorSimple("VALIDATION_BLOCKED", "Complete the avenant before signing", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "The avenant is being submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrPreconditionFailed):
		return pkg.NewDomainError("PRECONDITION_FAILED", "The avenant must be complete and signed", err, http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrFileRejected):
		return pkg.NewDomainError("FILE_REJECTED", "File rejected: JPEG, PNG, GIF or WebP up to 10 MB", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSignatureUnreadable):
		return pkg.NewDomainError("SIGNATURE_UNREADABLE", "The signature could not be captured, please sign again", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUpstreamRejected):
		return pkg.NewDomainError("UPSTREAM_REJECTED", "The operation failed, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
