package app

import (
	"database/sql"
	"os"

	"go-garderie/internal/auth"
	"go-garderie/internal/bootstrap"
	"go-garderie/internal/document"
	"go-garderie/internal/export"
	"go-garderie/internal/form"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
) error {
	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Repositories ---
	formRepo := form.NewRepository(gormDB)

	// --- Services ---
	formService := form.NewService(db, formRepo)
	authService := auth.NewService(
		os.Getenv("ADMIN_PASSWORD_HASH"),
		os.Getenv("JWT_SECRET"),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	formHandler := form.NewHandler(formService, auditLogger)
	documentHandler := document.NewHandler(formService, auditLogger)
	exportHandler := export.NewHandler(formService, auditLogger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		form.RegisterRoutes(api, formHandler)
		document.RegisterRoutes(api, documentHandler)
		export.RegisterRoutes(api, exportHandler)
	}

	return nil
}
