package handlers

import (
	response "chantierplus/internal/adapter/http/dto/response"
	"chantierplus/internal/usecase"
	"chantierplus/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AvenantHandler serves the avenants already signed and stored.

type AvenantHandler struct {
	usecase usecase.IAvenantUseCase
}

func NewAvenantHandler(uc usecase.IAvenantUseCase) *AvenantHandler {
	return &AvenantHandler{usecase: uc}
}

// GetAvenant godoc
// @Summary  Signed avenant
// @Tags     avenants
// @Produce  json
// @Param    avenant_id  path  string  true  "Avenant ID"
// @Success  200  {object}  response.AvenantResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /avenants/{avenant_id} [get]
func (h *AvenantHandler) GetAvenant(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("avenant_id"))
	if err != nil {
		appErr := mapAvenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAvenant(a))
}

// ListByChantier godoc
// @Summary  Avenants of a chantier, newest first
// @Tags     avenants
// @Produce  json
// @Param    chantier_id  path  string  true  "Chantier ID"
// @Success  200  {array}  response.AvenantResponse
// @Router   /chantiers/{chantier_id}/avenants [get]
func (h *AvenantHandler) ListByChantier(c *gin.Context) {
	list, err := h.usecase.ListByChantierID(c.Request.Context(), c.Param("chantier_id"))
	if err != nil {
		appErr := mapAvenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAvenants(list))
}

// SendEmail godoc
// @Summary  Email a signed avenant to its recipients
// @Tags     avenants
// @Produce  json
// @Param    avenant_id  path  string  true  "Avenant ID"
// @Success  200  {object}  response.AvenantResponse
// @Failure  502  {object}  pkg.HTTPError
// @Router   /avenants/{avenant_id}/send-email [post]
func (h *AvenantHandler) SendEmail(c *gin.Context) {
	avenantID := c.Param("avenant_id")
	log.Printf("[avenant][handler] send-email start avenant_id=%s", avenantID)

	a, err := h.usecase.SendEmail(c.Request.Context(), avenantID)
	if err != nil {
		log.Printf("[avenant][handler] send-email failed avenant_id=%s err=%v", avenantID, err)
		appErr := mapAvenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[avenant][handler] send-email success avenant_id=%s status=%s", avenantID, a.Status)
	c.JSON(http.StatusOK, response.FromAvenant(a))
}

func mapAvenantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAvenantID), errors.Is(err, usecase.ErrInvalidChantierID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAvenantNotFound):
		return pkg.NewDomainErrorSimple("AVENANT_NOT_FOUND", "Avenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoRecipients):
		return pkg.NewDomainErrorSimple("NO_RECIPIENTS", "No recipient configured for this avenant", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotifyDisabled):
		return pkg.NewDomainErrorSimple("NOTIFY_DISABLED", "Email notification is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrUpstreamRejected):
		return pkg.NewDomainError("UPSTREAM_REJECTED", "The email could not be sent, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
