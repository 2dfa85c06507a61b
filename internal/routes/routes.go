package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todoapi/internal/features/todos"
)

func SetupRoutes(router *gin.Engine, db *sql.DB) error {
	// API group; the todo resource is the only feature of this service
	api := router.Group("/api")

	return todos.RegisterRoutes(api, db)
}
