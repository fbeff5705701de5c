package export

import (
	"fmt"
	"net/http"
	"time"

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

// Download streams all fiches as a CSV attachment. The file is offered for
// download only, nothing is written back to the store.
func (h *Handler) Download(c *gin.Context) {
	rows, err := h.forms.Records(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	data, err := BuildCSV(rows)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "FORMS_EXPORTED",
		Message: "Fiches exported as CSV",
		Meta: map[string]any{
			"count": len(rows),
		},
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(time.Now())))
	c.Data(http.StatusOK, "text/csv", data)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Kept off the /forms subtree so the listing wildcard stays unambiguous.
	r.GET("/export/forms", middleware.AdminAuth(), handler.Download)
}
