package app

import (
	"go-garderie/internal/form"
	"go-garderie/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	// One table; create if absent.
	if err := gormDB.AutoMigrate(&form.Form{}); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	return registerModules(router, db, gormDB)
}
