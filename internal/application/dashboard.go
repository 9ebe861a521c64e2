package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/domain/repository"
)

// ViewModel is the per-request dashboard payload handed to the front end:
// author name, every list with its tasks, and which list is selected.
type ViewModel struct {
	Author    string               `json:"author"`
	TodoLists map[int]TodoListView `json:"todolists"`
	Selected  *int                 `json:"selected_todolist"`
}

type TodoListView struct {
	Title string           `json:"title"`
	Tasks map[int]TaskView `json:"tasks"`
}

type TaskView struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// DashboardService runs list/task CRUD for an already-authorized user and
// assembles the dashboard view model.
type DashboardService struct {
	Users  repository.UserRepository
	Lists  repository.TodoListRepository
	Logger *logrus.Logger
}

func NewDashboardService(users repository.UserRepository, lists repository.TodoListRepository, logger *logrus.Logger) *DashboardService {
	return &DashboardService{Users: users, Lists: lists, Logger: logger}
}

// CreateList creates a list for the user and returns its id. Two racing
// creates with the same title both reach the store; the loser surfaces the
// unique-constraint violation as a duplicate-title failure.
func (s *DashboardService) CreateList(ctx context.Context, userID int, title string) (int, error) {
	id, err := s.Lists.CreateList(ctx, userID, title)
	if errors.Is(err, repository.ErrDuplicateTitle) {
		return 0, ErrDuplicateTitle
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *DashboardService) RenameList(ctx context.Context, userID, listID int, title string) error {
	err := s.Lists.RenameList(ctx, userID, listID, title)
	if errors.Is(err, repository.ErrDuplicateTitle) {
		return ErrDuplicateTitle
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrListNotFound
	}
	return err
}

// DeleteList removes the list and all its tasks.
func (s *DashboardService) DeleteList(ctx context.Context, userID, listID int) error {
	err := s.Lists.DeleteList(ctx, userID, listID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrListNotFound
	}
	return err
}

func (s *DashboardService) CreateTask(ctx context.Context, userID, listID int, text string) (int, error) {
	id, err := s.Lists.CreateTask(ctx, userID, listID, text)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrListNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *DashboardService) UpdateTaskText(ctx context.Context, userID, taskID int, text string) error {
	err := s.Lists.UpdateTaskText(ctx, userID, taskID, text)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func (s *DashboardService) SetTaskDone(ctx context.Context, userID, taskID int, done bool) error {
	err := s.Lists.SetTaskDone(ctx, userID, taskID, done)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func (s *DashboardService) DeleteTask(ctx context.Context, userID, taskID int) error {
	err := s.Lists.DeleteTask(ctx, userID, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// UserView assembles the dashboard view model. With no explicit selection
// the oldest list (smallest id) is selected; with no lists at all the map
// is empty and Selected stays nil.
func (s *DashboardService) UserView(ctx context.Context, userID int, selected *int) (*ViewModel, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lists, err := s.Lists.ListsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	vm := &ViewModel{
		Author:    u.Name,
		TodoLists: make(map[int]TodoListView, len(lists)),
	}

	for _, l := range lists {
		tasks, err := s.Lists.TasksByList(ctx, userID, l.ID)
		if err != nil {
			return nil, err
		}
		tv := make(map[int]TaskView, len(tasks))
		for _, t := range tasks {
			tv[t.ID] = TaskView{Text: t.Text, Done: t.Done}
		}
		vm.TodoLists[l.ID] = TodoListView{Title: l.Title, Tasks: tv}
	}

	switch {
	case selected != nil:
		if _, ok := vm.TodoLists[*selected]; !ok {
			return nil, ErrListNotFound
		}
		vm.Selected = selected
	case len(lists) > 0:
		first := lists[0].ID
		for _, l := range lists[1:] {
			if l.ID < first {
				first = l.ID
			}
		}
		vm.Selected = &first
	}

	return vm, nil
}
