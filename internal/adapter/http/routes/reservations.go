package routes

import (
	"truga_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBoxes    = "/boxes"
	PathSessions = "/reservations/sessions"
)

func addReservationRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, wizardHandler *handlers.WizardHandler) {
	boxes := rg.Group(PathBoxes)
	{
		boxes.GET("", catalogHandler.ListBoxes)
		boxes.GET("/:key", catalogHandler.GetBox)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", wizardHandler.OpenSession)
		sessions.GET("/:session_id", wizardHandler.GetSession)
		sessions.DELETE("/:session_id", wizardHandler.CloseSession)
		sessions.POST("/:session_id/actions", wizardHandler.ApplyAction)
		sessions.GET("/:session_id/quote", wizardHandler.Quote)
		sessions.POST("/:session_id/submit", wizardHandler.Submit)
	}
}
