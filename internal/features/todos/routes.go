// ================== internal/features/todos/routes.go ==================
package todos

import (
	"database/sql"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, db *sql.DB) error {
	repo, err := NewRepository(db)
	if err != nil {
		return err
	}
	handler := NewHandler(repo)

	todo := router.Group("/todo")
	{
		todo.GET("", handler.List)
		todo.GET("/incoming", handler.Incoming)
		todo.GET("/:id", handler.Get)
		todo.POST("", handler.Create)
		todo.PUT("/:id", handler.Update)
		todo.PATCH("/:id/updatePercent", handler.UpdatePercent)
		todo.PATCH("/:id/done", handler.Done)
		todo.DELETE("/:id", handler.Delete)
	}

	return nil
}
