package handlers

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/domain/entity"
	"github.com/jpsalviano/todolists/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// In-memory repositories mirroring the Postgres and Redis implementations.

type memUsers struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{nextID: 1, byID: map[int]*entity.User{}}
}

func (m *memUsers) find(email string) *entity.User {
	for _, u := range m.byID {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.find(u.Email) != nil {
		return repository.ErrDuplicateEmail
	}
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	m.nextID++
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u := m.find(email); u != nil {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) SetVerified(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.find(email)
	if u == nil {
		return repository.ErrNotFound
	}
	u.Verified = true
	return nil
}

func (m *memUsers) UpdateUnverified(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.find(u.Email)
	if existing == nil || existing.Verified {
		return repository.ErrNotFound
	}
	existing.Name = u.Name
	existing.Password = u.Password
	u.ID = existing.ID
	return nil
}

type memTokens struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemTokens() *memTokens {
	return &memTokens{data: map[string]string{}}
}

func (m *memTokens) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memTokens) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memTokens) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// verifyCodeFor returns the stored verification code for email.
func (m *memTokens) verifyCodeFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.data {
		if v == email && strings.HasPrefix(k, "verify:") {
			return strings.TrimPrefix(k, "verify:")
		}
	}
	return ""
}

type memLists struct {
	mu     sync.Mutex
	nextID int
	lists  map[int]*entity.TodoList
	tasks  map[int]*entity.Task
}

func newMemLists() *memLists {
	return &memLists{nextID: 1, lists: map[int]*entity.TodoList{}, tasks: map[int]*entity.Task{}}
}

func (m *memLists) CreateList(_ context.Context, userID int, title string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lists {
		if l.UserID == userID && l.Title == title {
			return 0, repository.ErrDuplicateTitle
		}
	}
	id := m.nextID
	m.nextID++
	m.lists[id] = &entity.TodoList{ID: id, Title: title, UserID: userID}
	return id, nil
}

func (m *memLists) RenameList(_ context.Context, userID, listID int, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[listID]
	if !ok || l.UserID != userID {
		return repository.ErrNotFound
	}
	for _, other := range m.lists {
		if other.ID != listID && other.UserID == userID && other.Title == title {
			return repository.ErrDuplicateTitle
		}
	}
	l.Title = title
	return nil
}

func (m *memLists) DeleteList(_ context.Context, userID, listID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[listID]
	if !ok || l.UserID != userID {
		return repository.ErrNotFound
	}
	for id, t := range m.tasks {
		if t.ListID == listID {
			delete(m.tasks, id)
		}
	}
	delete(m.lists, listID)
	return nil
}

func (m *memLists) ListsByUser(_ context.Context, userID int) ([]entity.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.TodoList
	for _, l := range m.lists {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLists) CreateTask(_ context.Context, userID, listID int, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[listID]
	if !ok || l.UserID != userID {
		return 0, repository.ErrNotFound
	}
	id := m.nextID
	m.nextID++
	m.tasks[id] = &entity.Task{ID: id, Text: text, ListID: listID}
	return id, nil
}

func (m *memLists) taskOf(userID, taskID int) *entity.Task {
	t, ok := m.tasks[taskID]
	if !ok {
		return nil
	}
	l, ok := m.lists[t.ListID]
	if !ok || l.UserID != userID {
		return nil
	}
	return t
}

func (m *memLists) UpdateTaskText(_ context.Context, userID, taskID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.taskOf(userID, taskID)
	if t == nil {
		return repository.ErrNotFound
	}
	t.Text = text
	return nil
}

func (m *memLists) SetTaskDone(_ context.Context, userID, taskID int, done bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.taskOf(userID, taskID)
	if t == nil {
		return repository.ErrNotFound
	}
	t.Done = done
	return nil
}

func (m *memLists) DeleteTask(_ context.Context, userID, taskID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taskOf(userID, taskID) == nil {
		return repository.ErrNotFound
	}
	delete(m.tasks, taskID)
	return nil
}

func (m *memLists) TasksByList(_ context.Context, userID, listID int) ([]entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[listID]
	if !ok || l.UserID != userID {
		return nil, repository.ErrNotFound
	}
	var out []entity.Task
	for _, t := range m.tasks {
		if t.ListID == listID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var (
	_ repository.UserRepository     = (*memUsers)(nil)
	_ repository.TodoListRepository = (*memLists)(nil)
	_ repository.TokenStore         = (*memTokens)(nil)
)
