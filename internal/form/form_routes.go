package form

import (
	"go-garderie/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	forms := r.Group("/forms")
	{
		// Guardian flow: submit a signed fiche, reload one from its link.
		forms.POST("", handler.Sign)
		forms.GET("/:id", handler.Get)

		// Admin review.
		forms.GET("", middleware.AdminAuth(), handler.GetAll)
		forms.DELETE("/:id", middleware.AdminAuth(), handler.Delete)
	}
}
