// ================== internal/features/todos/model.go ==================
package todos

import "time"

// Todo represents a todo item
// @Description Todo item with all its properties
type Todo struct {
	ID              int64     `json:"id" example:"1"`
	Title           string    `json:"title" example:"Buy groceries"`
	Description     string    `json:"description,omitempty" example:"Get milk, bread, and eggs"`
	Expiry          time.Time `json:"expiry" example:"2023-12-31T23:59:59Z"`
	PercentComplete int       `json:"percentComplete" example:"0"`
}

// CreateTodoRequest represents todo creation data
// @Description Data required to create a new todo; any supplied id is ignored
type CreateTodoRequest struct {
	Title           string     `json:"title" example:"Buy groceries"`
	Description     string     `json:"description" example:"Get milk, bread, and eggs"`
	Expiry          *time.Time `json:"expiry" example:"2023-12-31T23:59:59Z"`
	PercentComplete *int       `json:"percentComplete" example:"0"`
}

// UpdateTodoRequest represents a full-record replacement
// @Description Complete todo record; id must match the route id
type UpdateTodoRequest struct {
	ID              int64      `json:"id" example:"1"`
	Title           string     `json:"title" example:"Buy groceries"`
	Description     string     `json:"description" example:"Get milk, bread, and eggs"`
	Expiry          *time.Time `json:"expiry" example:"2023-12-31T23:59:59Z"`
	PercentComplete *int       `json:"percentComplete" example:"25"`
}
