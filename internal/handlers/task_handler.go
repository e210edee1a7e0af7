package handlers

import (
	"net/http"

	"project-management-api/internal/authz"
	"project-management-api/internal/cache"
	"project-management-api/internal/middleware"
	"project-management-api/internal/models"
	"project-management-api/internal/response"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest represents the payload for creating a task
type CreateTaskRequest struct {
	Project     uint              `json:"project" binding:"required"`
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	AssignedTo  *uint             `json:"assigned_to"`
	Status      models.TaskStatus `json:"status"`
	DueDate     string            `json:"due_date"`
}

// UpdateTaskRequest represents the partial-update payload; id travels in
// the body.
type UpdateTaskRequest struct {
	ID          uint               `json:"id"`
	Project     *uint              `json:"project"`
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	AssignedTo  *uint              `json:"assigned_to"`
	Status      *models.TaskStatus `json:"status"`
	DueDate     *string            `json:"due_date"`
}

// AssignTaskRequest represents the dedicated assignment payload
type AssignTaskRequest struct {
	Task       uint `json:"task" binding:"required"`
	AssignedTo uint `json:"assigned_to" binding:"required"`
}

// TaskListItem is one row of the tasks listing
type TaskListItem struct {
	ID           uint              `json:"id"`
	ProjectName  string            `json:"project_name"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	AssignedUser string            `json:"assigned_user"`
	Status       models.TaskStatus `json:"status"`
}

/*
*
ListTasks handles GET /api/tasks
Returns all tasks through the listing cache.
*/
func (h *Handler) ListTasks(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.ListRoles...) {
		response.Unauthorized(c)
		return
	}

	if cached, ok := h.listings.Get(cache.KeyTasks); ok {
		response.OK(c, cached, "Showing all the Tasks.")
		return
	}

	var tasks []models.Task
	if err := h.db.Preload("Project").Preload("AssignedTo").Find(&tasks).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]TaskListItem, 0, len(tasks))
	for _, t := range tasks {
		assignedUser := ""
		if t.AssignedTo != nil {
			assignedUser = t.AssignedTo.Username
		}
		items = append(items, TaskListItem{
			ID:           t.ID,
			ProjectName:  t.Project.Name,
			Name:         t.Name,
			Description:  t.Description,
			AssignedUser: assignedUser,
			Status:       t.Status,
		})
	}

	h.listings.Set(cache.KeyTasks, items)
	response.OK(c, items, "Showing all the Tasks.")
}

/*
*
CreateTask handles POST /api/tasks
Creates a task in a project; an assignee, if given, must be a member of
that project. A created task with an assignee notifies the assignee.
*/
func (h *Handler) CreateTask(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.CreateRoles...) {
		response.Unauthorized(c)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var project models.Project
	if err := h.db.First(&project, req.Project).Error; err != nil {
		notFound(c, err, "No project with given id.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusNotYetStarted
	}
	if !status.Valid() {
		response.Error(c, http.StatusBadRequest, "Invalid status.")
		return
	}

	if req.AssignedTo != nil {
		ok, err := h.userBelongsToProject(*req.AssignedTo, project.ID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if !ok {
			response.Error(c, http.StatusBadRequest, assignmentErrMessage)
			return
		}
	}

	task := models.Task{
		ProjectID:    project.ID,
		Name:         req.Name,
		Description:  req.Description,
		AssignedToID: req.AssignedTo,
		Status:       status,
		DueDate:      req.DueDate,
		CreatedByID:  middleware.CallerID(c),
	}
	if err := h.db.Create(&task).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.listings.Invalidate(cache.KeyTasks)
	h.notifier.TaskSaved(&task, true)
	response.Created(c, "Task created successfully.")
}

// UpdateTask handles PUT /api/tasks
// Partially updates a task; a new assignee is validated against the
// (possibly updated) project's member set. If the task ends up with an
// assignee, that user gets an update notification.
func (h *Handler) UpdateTask(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.UpdateRoles...) {
		response.Unauthorized(c)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID == 0 {
		response.Error(c, http.StatusBadRequest, "id is required.")
		return
	}

	var task models.Task
	if err := h.db.First(&task, req.ID).Error; err != nil {
		notFound(c, err, "No task with given id.")
		return
	}

	if req.Project != nil {
		var project models.Project
		if err := h.db.First(&project, *req.Project).Error; err != nil {
			notFound(c, err, "No project with given id.")
			return
		}
		task.ProjectID = project.ID
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			response.Error(c, http.StatusBadRequest, "Invalid status.")
			return
		}
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.AssignedTo != nil {
		task.AssignedToID = req.AssignedTo
	}

	// Revalidate the assignee against the (possibly updated) project so
	// moving a task cannot orphan its assignment.
	if task.AssignedToID != nil {
		ok, err := h.userBelongsToProject(*task.AssignedToID, task.ProjectID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if !ok {
			response.Error(c, http.StatusBadRequest, assignmentErrMessage)
			return
		}
	}

	if err := h.db.Save(&task).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.listings.Invalidate(cache.KeyTasks)
	h.notifier.TaskSaved(&task, false)
	response.OK(c, nil, "Task updated successfully.")
}

// DeleteTask handles DELETE /api/tasks?id=N
func (h *Handler) DeleteTask(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.DeleteRoles...) {
		response.Unauthorized(c)
		return
	}

	var task models.Task
	if err := h.db.First(&task, "id = ?", c.Query("id")).Error; err != nil {
		notFound(c, err, "No task with the given id.")
		return
	}

	if err := h.db.Delete(&task).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.listings.Invalidate(cache.KeyTasks)
	response.JSON(c, http.StatusNoContent, nil, "Task deleted successfully.")
}

// AssignTask handles PUT /api/assign-task
// Reassigns a task; the candidate must be a member of the task's project.
func (h *Handler) AssignTask(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.AssignRoles...) {
		response.Unauthorized(c)
		return
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var task models.Task
	if err := h.db.First(&task, req.Task).Error; err != nil {
		notFound(c, err, "No task with given id.")
		return
	}

	ok, err := h.userBelongsToProject(req.AssignedTo, task.ProjectID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		response.Error(c, http.StatusBadRequest, assignmentErrMessage)
		return
	}

	task.AssignedToID = &req.AssignedTo
	if err := h.db.Save(&task).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.listings.Invalidate(cache.KeyTasks)
	h.notifier.TaskSaved(&task, false)
	response.OK(c, nil, "Task assigned successfully.")
}
