package routes

import (
	"chantierplus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAvenants  = "/avenants"
	PathDrafts    = "/avenants/drafts"
	PathChantiers = "/chantiers"
)

func addAvenantRoutes(rg *gin.RouterGroup, composeHandler *handlers.ComposeHandler, avenantHandler *handlers.AvenantHandler) {
	chantiers := rg.Group(PathChantiers)
	{
		chantiers.POST("/:chantier_id/avenants/drafts", composeHandler.OpenDraft)
		chantiers.GET("/:chantier_id/avenants", avenantHandler.ListByChantier)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.GET("/:draft_id", composeHandler.GetDraft)
		drafts.PATCH("/:draft_id", composeHandler.UpdateField)
		drafts.DELETE("/:draft_id", composeHandler.Abandon)
		drafts.POST("/:draft_id/dictation", composeHandler.Dictate)
		drafts.PUT("/:draft_id/photo", composeHandler.AttachPhoto)
		drafts.DELETE("/:draft_id/photo", composeHandler.RemovePhoto)
		drafts.PUT("/:draft_id/signature", composeHandler.Sign)
		drafts.DELETE("/:draft_id/signature", composeHandler.ClearSignature)
		drafts.POST("/:draft_id/submit", composeHandler.Submit)
	}

	avenants := rg.Group(PathAvenants)
	{
		avenants.GET("/:avenant_id", avenantHandler.GetAvenant)
		avenants.POST("/:avenant_id/send-email", avenantHandler.SendEmail)
	}
}
