package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpsalviano/todolists/internal/domain/entity"
	"github.com/jpsalviano/todolists/internal/domain/repository"
)

// TodoListRepository stores lists and tasks. Every statement carries the
// owning user id so rows of other users are unreachable by construction.
type TodoListRepository struct {
	pool *pgxpool.Pool
}

func NewTodoListRepository(pool *pgxpool.Pool) *TodoListRepository {
	return &TodoListRepository{pool: pool}
}

func (r *TodoListRepository) CreateList(ctx context.Context, userID int, title string) (int, error) {
	var id int
	row := r.pool.QueryRow(ctx, `
		INSERT INTO lists (title, user_id)
		VALUES ($1, $2)
		RETURNING list_id
	`, title, userID)
	if err := row.Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateTitle
		}
		return 0, err
	}
	return id, nil
}

func (r *TodoListRepository) RenameList(ctx context.Context, userID, listID int, title string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE lists SET title = $1
		WHERE list_id = $2 AND user_id = $3
	`, title, listID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateTitle
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteList removes the tasks and then the list inside one transaction,
// so a partial failure can never leave orphaned tasks.
func (r *TodoListRepository) DeleteList(ctx context.Context, userID, listID int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		DELETE FROM tasks
		WHERE list_id IN (SELECT list_id FROM lists WHERE list_id = $1 AND user_id = $2)
	`, listID, userID); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `
		DELETE FROM lists WHERE list_id = $1 AND user_id = $2
	`, listID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *TodoListRepository) ListsByUser(ctx context.Context, userID int) ([]entity.TodoList, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT list_id, title, user_id
		FROM lists
		WHERE user_id = $1
		ORDER BY list_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []entity.TodoList
	for rows.Next() {
		var l entity.TodoList
		if err := rows.Scan(&l.ID, &l.Title, &l.UserID); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *TodoListRepository) CreateTask(ctx context.Context, userID, listID int, text string) (int, error) {
	var id int
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (list_id, task)
		SELECT list_id, $1 FROM lists WHERE list_id = $2 AND user_id = $3
		RETURNING task_id
	`, text, listID, userID)
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *TodoListRepository) UpdateTaskText(ctx context.Context, userID, taskID int, text string) error {
	return r.execTask(ctx, `
		UPDATE tasks SET task = $1
		WHERE task_id = $2
		  AND list_id IN (SELECT list_id FROM lists WHERE user_id = $3)
	`, text, taskID, userID)
}

func (r *TodoListRepository) SetTaskDone(ctx context.Context, userID, taskID int, done bool) error {
	return r.execTask(ctx, `
		UPDATE tasks SET done = $1
		WHERE task_id = $2
		  AND list_id IN (SELECT list_id FROM lists WHERE user_id = $3)
	`, done, taskID, userID)
}

func (r *TodoListRepository) DeleteTask(ctx context.Context, userID, taskID int) error {
	return r.execTask(ctx, `
		DELETE FROM tasks
		WHERE task_id = $1
		  AND list_id IN (SELECT list_id FROM lists WHERE user_id = $2)
	`, taskID, userID)
}

func (r *TodoListRepository) execTask(ctx context.Context, query string, args ...any) error {
	res, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TodoListRepository) TasksByList(ctx context.Context, userID, listID int) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.task_id, t.task, t.done, t.list_id
		FROM tasks t
		JOIN lists l ON l.list_id = t.list_id
		WHERE t.list_id = $1 AND l.user_id = $2
		ORDER BY t.task_id
	`, listID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Done, &t.ListID); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

var _ repository.TodoListRepository = (*TodoListRepository)(nil)
