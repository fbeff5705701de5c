package document

import (
	"fmt"
	"net/http"

	"go-garderie/internal/bootstrap"
	"go-garderie/internal/form"
	"go-garderie/internal/middleware"
	"go-garderie/internal/shared/apperror"
	"go-garderie/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	forms form.Service
	audit bootstrap.AuditLogger
}

func NewHandler(forms form.Service, audit bootstrap.AuditLogger) *Handler {
	return &Handler{forms: forms, audit: audit}
}

// Download regenerates the fiche as a PDF attachment.
func (h *Handler) Download(c *gin.Context) {
	id := c.Param("id")

	f, err := h.forms.Record(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	pdf, err := PDF(Render(*f))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "FORM_DOCUMENT_GENERATED",
		Message: "Fiche regenerated as PDF",
		Meta: map[string]any{
			"form_id": id,
		},
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "fiche_"+id+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/forms/:id/document", middleware.AdminAuth(), handler.Download)
}
