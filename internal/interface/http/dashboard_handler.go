package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/internal/interface/middleware"
	"github.com/jpsalviano/todolists/pkg/response"
)

// DashboardHandler serves the dashboard and the list/task CRUD endpoints.
// Every route sits behind the Auth middleware; the user id always comes
// from the context, never from the request.
type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

func (h *DashboardHandler) userID(c *gin.Context) int {
	return c.GetInt(middleware.CtxUserID)
}

// view writes the dashboard view model, selected list included.
func (h *DashboardHandler) view(c *gin.Context, selected *int) {
	vm, err := h.Svc.UserView(c.Request.Context(), h.userID(c), selected)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vm, "dashboard")
}

// Dashboard GET /dashboard.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	h.view(c, nil)
}

// CreateList POST /create-todolist, field "create-todolist" = title.
// The new list becomes the selected one.
func (h *DashboardHandler) CreateList(c *gin.Context) {
	title := c.PostForm("create-todolist")
	if title == "" {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{"create-todolist": "is required"})
		return
	}
	id, err := h.Svc.CreateList(c.Request.Context(), h.userID(c), title)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.view(c, &id)
}

// GetList POST /get-todolist, field "get-todolist" = list id.
func (h *DashboardHandler) GetList(c *gin.Context) {
	id, ok := h.formInt(c, "get-todolist")
	if !ok {
		return
	}
	h.view(c, &id)
}

// UpdateList POST /update-todolist, fields "update-todolist" = list id
// and "change-todolist-title" = new title.
func (h *DashboardHandler) UpdateList(c *gin.Context) {
	id, ok := h.formInt(c, "update-todolist")
	if !ok {
		return
	}
	title := c.PostForm("change-todolist-title")
	if title == "" {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{"change-todolist-title": "is required"})
		return
	}
	if err := h.Svc.RenameList(c.Request.Context(), h.userID(c), id, title); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.view(c, &id)
}

// DeleteList POST /delete-todolist, field "delete-todolist" = list id.
// Falls back to the oldest remaining list for selection.
func (h *DashboardHandler) DeleteList(c *gin.Context) {
	id, ok := h.formInt(c, "delete-todolist")
	if !ok {
		return
	}
	if err := h.Svc.DeleteList(c.Request.Context(), h.userID(c), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.view(c, nil)
}

// CreateTask POST /create-task, fields "selected-todolist" = list id and
// "create-task" = task text.
func (h *DashboardHandler) CreateTask(c *gin.Context) {
	listID, ok := h.formInt(c, "selected-todolist")
	if !ok {
		return
	}
	text := c.PostForm("create-task")
	if text == "" {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{"create-task": "is required"})
		return
	}
	if _, err := h.Svc.CreateTask(c.Request.Context(), h.userID(c), listID, text); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.view(c, &listID)
}

// UpdateTask POST /update-task, field "update-task" = "listID;taskID;done".
// An optional "change-task-text" field rewrites the task text instead.
func (h *DashboardHandler) UpdateTask(c *gin.Context) {
	listID, taskID, rest, ok := h.taskRef(c, "update-task", 3)
	if !ok {
		return
	}
	if text := c.PostForm("change-task-text"); text != "" {
		if err := h.Svc.UpdateTaskText(c.Request.Context(), h.userID(c), taskID, text); err != nil {
			writeError(c, h.Logger, err)
			return
		}
		h.view(c, &listID)
		return
	}
	done, err := strconv.ParseBool(rest)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{"update-task": "done must be true or false"})
		return
	}
	if err := h.Svc.SetTaskDone(c.Request.Context(), h.userID(c), taskID, done); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.view(c, &listID)
}

// DeleteTask POST /delete-task, field "delete-task" = "listID;taskID".
func (h *DashboardHandler) DeleteTask(c *gin.Context) {
	listID, taskID, _, ok := h.taskRef(c, "delete-task", 2)
	if !ok {
		return
	}
	if err := h.Svc.DeleteTask(c.Request.Context(), h.userID(c), taskID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.view(c, &listID)
}

func (h *DashboardHandler) formInt(c *gin.Context, field string) (int, bool) {
	v, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{field: "must be an integer id"})
		return 0, false
	}
	return v, true
}

// taskRef parses the semicolon-packed "listID;taskID[;extra]" form value.
func (h *DashboardHandler) taskRef(c *gin.Context, field string, parts int) (listID, taskID int, extra string, ok bool) {
	segs := strings.Split(c.PostForm(field), ";")
	if len(segs) != parts {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{field: "malformed value"})
		return 0, 0, "", false
	}
	listID, err1 := strconv.Atoi(segs[0])
	taskID, err2 := strconv.Atoi(segs[1])
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{field: "malformed value"})
		return 0, 0, "", false
	}
	if parts == 3 {
		extra = segs[2]
	}
	return listID, taskID, extra, true
}
