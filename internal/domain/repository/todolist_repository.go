package repository

import (
	"context"

	"github.com/jpsalviano/todolists/internal/domain/entity"
)

// TodoListRepository defines list/task storage. Every statement is scoped
// by the owning user id so one user can never touch another's rows.
type TodoListRepository interface {
	// CreateList returns the generated list id.
	// Returns ErrDuplicateTitle when (title, userID) already exists.
	CreateList(ctx context.Context, userID int, title string) (int, error)
	RenameList(ctx context.Context, userID, listID int, title string) error
	// DeleteList removes the list and all of its tasks in one transaction.
	DeleteList(ctx context.Context, userID, listID int) error
	ListsByUser(ctx context.Context, userID int) ([]entity.TodoList, error)

	// CreateTask returns the generated task id. Ids increase monotonically.
	CreateTask(ctx context.Context, userID, listID int, text string) (int, error)
	UpdateTaskText(ctx context.Context, userID, taskID int, text string) error
	SetTaskDone(ctx context.Context, userID, taskID int, done bool) error
	DeleteTask(ctx context.Context, userID, taskID int) error
	TasksByList(ctx context.Context, userID, listID int) ([]entity.Task, error)
}
