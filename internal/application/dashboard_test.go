package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/jpsalviano/todolists/internal/domain/entity"
)

type DashboardSuite struct {
	suite.Suite
	users  *memUsers
	lists  *memLists
	svc    *DashboardService
	userID int
}

func (s *DashboardSuite) SetupTest() {
	s.users = newMemUsers()
	s.lists = newMemLists()
	s.svc = NewDashboardService(s.users, s.lists, testLogger())

	u := &entity.User{Name: "Maria Silva", Email: "maria@example.com", Password: "x", Verified: true}
	assert.NoError(s.T(), s.users.Create(context.Background(), u))
	s.userID = u.ID
}

func TestDashboardSuite(t *testing.T) {
	suite.Run(t, new(DashboardSuite))
}

func (s *DashboardSuite) TestUserView_Empty() {
	vm, err := s.svc.UserView(context.Background(), s.userID, nil)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Maria Silva", vm.Author)
	assert.Empty(s.T(), vm.TodoLists)
	assert.Nil(s.T(), vm.Selected)
}

func (s *DashboardSuite) TestUserView_AutoSelectsOldestList() {
	first, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	_, err = s.svc.CreateList(context.Background(), s.userID, "Chores")
	assert.NoError(s.T(), err)

	vm, err := s.svc.UserView(context.Background(), s.userID, nil)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), vm.TodoLists, 2)
	if assert.NotNil(s.T(), vm.Selected) {
		assert.Equal(s.T(), first, *vm.Selected)
	}
}

func (s *DashboardSuite) TestUserView_ExplicitSelection() {
	_, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	second, err := s.svc.CreateList(context.Background(), s.userID, "Chores")
	assert.NoError(s.T(), err)

	vm, err := s.svc.UserView(context.Background(), s.userID, &second)
	assert.NoError(s.T(), err)
	if assert.NotNil(s.T(), vm.Selected) {
		assert.Equal(s.T(), second, *vm.Selected)
	}
}

func (s *DashboardSuite) TestUserView_SelectionMustExist() {
	missing := 999
	_, err := s.svc.UserView(context.Background(), s.userID, &missing)
	assert.ErrorIs(s.T(), err, ErrListNotFound)
}

func (s *DashboardSuite) TestUserView_TasksIncluded() {
	listID, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	taskID, err := s.svc.CreateTask(context.Background(), s.userID, listID, "Buy milk")
	assert.NoError(s.T(), err)
	assert.NoError(s.T(), s.svc.SetTaskDone(context.Background(), s.userID, taskID, true))

	vm, err := s.svc.UserView(context.Background(), s.userID, nil)
	assert.NoError(s.T(), err)
	lv := vm.TodoLists[listID]
	assert.Equal(s.T(), "Groceries", lv.Title)
	assert.Equal(s.T(), TaskView{Text: "Buy milk", Done: true}, lv.Tasks[taskID])
}

func (s *DashboardSuite) TestCreateTask_IdsStrictlyIncrease() {
	listID, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)

	first, err := s.svc.CreateTask(context.Background(), s.userID, listID, "Buy milk")
	assert.NoError(s.T(), err)
	second, err := s.svc.CreateTask(context.Background(), s.userID, listID, "Buy bread")
	assert.NoError(s.T(), err)
	assert.Greater(s.T(), second, first)
}

func (s *DashboardSuite) TestSetTaskDone_RoundTrip() {
	listID, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	taskID, err := s.svc.CreateTask(context.Background(), s.userID, listID, "Buy milk")
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.svc.SetTaskDone(context.Background(), s.userID, taskID, true))
	vm, err := s.svc.UserView(context.Background(), s.userID, nil)
	assert.NoError(s.T(), err)
	assert.True(s.T(), vm.TodoLists[listID].Tasks[taskID].Done)

	assert.NoError(s.T(), s.svc.SetTaskDone(context.Background(), s.userID, taskID, false))
	vm, err = s.svc.UserView(context.Background(), s.userID, nil)
	assert.NoError(s.T(), err)
	assert.False(s.T(), vm.TodoLists[listID].Tasks[taskID].Done)
}

func (s *DashboardSuite) TestCreateList_DuplicateTitle() {
	_, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	_, err = s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.ErrorIs(s.T(), err, ErrDuplicateTitle)
}

func (s *DashboardSuite) TestCreateList_SameTitleDifferentUsers() {
	other := &entity.User{Name: "Other Person", Email: "other@example.com", Password: "x", Verified: true}
	assert.NoError(s.T(), s.users.Create(context.Background(), other))

	_, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	_, err = s.svc.CreateList(context.Background(), other.ID, "Groceries")
	assert.NoError(s.T(), err)
}

func (s *DashboardSuite) TestRenameList_NotFound() {
	err := s.svc.RenameList(context.Background(), s.userID, 999, "New title")
	assert.ErrorIs(s.T(), err, ErrListNotFound)
}

func (s *DashboardSuite) TestRenameList_DuplicateTitle() {
	_, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	second, err := s.svc.CreateList(context.Background(), s.userID, "Chores")
	assert.NoError(s.T(), err)

	err = s.svc.RenameList(context.Background(), s.userID, second, "Groceries")
	assert.ErrorIs(s.T(), err, ErrDuplicateTitle)
}

func (s *DashboardSuite) TestDeleteList_RemovesTasks() {
	listID, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	taskID, err := s.svc.CreateTask(context.Background(), s.userID, listID, "Buy milk")
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.svc.DeleteList(context.Background(), s.userID, listID))

	err = s.svc.SetTaskDone(context.Background(), s.userID, taskID, true)
	assert.ErrorIs(s.T(), err, ErrTaskNotFound)
}

func (s *DashboardSuite) TestTaskOps_OtherUsersRowsUnreachable() {
	other := &entity.User{Name: "Other Person", Email: "other@example.com", Password: "x", Verified: true}
	assert.NoError(s.T(), s.users.Create(context.Background(), other))
	listID, err := s.svc.CreateList(context.Background(), other.ID, "Private")
	assert.NoError(s.T(), err)
	taskID, err := s.svc.CreateTask(context.Background(), other.ID, listID, "Secret")
	assert.NoError(s.T(), err)

	_, err = s.svc.CreateTask(context.Background(), s.userID, listID, "Sneaky")
	assert.ErrorIs(s.T(), err, ErrListNotFound)
	assert.ErrorIs(s.T(), s.svc.SetTaskDone(context.Background(), s.userID, taskID, true), ErrTaskNotFound)
	assert.ErrorIs(s.T(), s.svc.UpdateTaskText(context.Background(), s.userID, taskID, "Hacked"), ErrTaskNotFound)
	assert.ErrorIs(s.T(), s.svc.DeleteTask(context.Background(), s.userID, taskID), ErrTaskNotFound)
	assert.ErrorIs(s.T(), s.svc.DeleteList(context.Background(), s.userID, listID), ErrListNotFound)
}

func (s *DashboardSuite) TestDeleteTask() {
	listID, err := s.svc.CreateList(context.Background(), s.userID, "Groceries")
	assert.NoError(s.T(), err)
	taskID, err := s.svc.CreateTask(context.Background(), s.userID, listID, "Buy milk")
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.svc.DeleteTask(context.Background(), s.userID, taskID))
	assert.ErrorIs(s.T(), s.svc.DeleteTask(context.Background(), s.userID, taskID), ErrTaskNotFound)
}
