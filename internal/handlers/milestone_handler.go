package handlers

import (
	"net/http"

	"project-management-api/internal/authz"
	"project-management-api/internal/middleware"
	"project-management-api/internal/models"
	"project-management-api/internal/response"

	"github.com/gin-gonic/gin"
)

// CreateMilestoneRequest represents the payload for creating a milestone
type CreateMilestoneRequest struct {
	Project     uint   `json:"project" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	AssignedTo  *uint  `json:"assigned_to"`
}

// UpdateMilestoneRequest represents the partial-update payload
type UpdateMilestoneRequest struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	IsAchieved  *bool   `json:"is_achieved"`
	AssignedTo  *uint   `json:"assigned_to"`
}

// MilestoneListItem is one row of the milestones listing
type MilestoneListItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	ProjectName string `json:"project_name"`
	IsAchieved  bool   `json:"is_achieved"`
}

// ListMilestones handles GET /api/milestones
// Milestone listings are not cached; they are read straight through.
func (h *Handler) ListMilestones(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.ListRoles...) {
		response.Unauthorized(c)
		return
	}

	var milestones []models.Milestone
	if err := h.db.Preload("Project").Find(&milestones).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]MilestoneListItem, 0, len(milestones))
	for _, m := range milestones {
		items = append(items, MilestoneListItem{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			DueDate:     m.DueDate,
			ProjectName: m.Project.Name,
			IsAchieved:  m.IsAchieved,
		})
	}

	response.OK(c, items, "Showing all the milestones.")
}

// CreateMilestone handles POST /api/milestones
// The assignee, if given, must be a member of the parent project.
func (h *Handler) CreateMilestone(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.CreateRoles...) {
		response.Unauthorized(c)
		return
	}

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var project models.Project
	if err := h.db.First(&project, req.Project).Error; err != nil {
		notFound(c, err, "No project with given id.")
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

	milestone := models.Milestone{
		ProjectID:    project.ID,
		Name:         req.Name,
		Description:  req.Description,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedTo,
		CreatedByID:  middleware.CallerID(c),
	}
	if err := h.db.Create(&milestone).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.notifier.MilestoneSaved(&milestone, true)
	response.Created(c, "Milestone created successfully.")
}

// UpdateMilestone handles PUT /api/milestones
func (h *Handler) UpdateMilestone(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.UpdateRoles...) {
		response.Unauthorized(c)
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID == 0 {
		response.Error(c, http.StatusBadRequest, "id is required.")
		return
	}

	var milestone models.Milestone
	if err := h.db.First(&milestone, req.ID).Error; err != nil {
		notFound(c, err, "No milestone with given id.")
		return
	}

	if req.Name != nil {
		milestone.Name = *req.Name
	}
	if req.Description != nil {
		milestone.Description = *req.Description
	}
	if req.DueDate != nil {
		milestone.DueDate = *req.DueDate
	}
	if req.IsAchieved != nil {
		milestone.IsAchieved = *req.IsAchieved
	}
	if req.AssignedTo != nil {
		ok, err := h.userBelongsToProject(*req.AssignedTo, milestone.ProjectID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if !ok {
			response.Error(c, http.StatusBadRequest, assignmentErrMessage)
			return
		}
		milestone.AssignedToID = req.AssignedTo
	}

	if err := h.db.Save(&milestone).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.notifier.MilestoneSaved(&milestone, false)
	response.OK(c, nil, "Milestone updated successfully.")
}

// DeleteMilestone handles DELETE /api/milestones?id=N
func (h *Handler) DeleteMilestone(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.DeleteRoles...) {
		response.Unauthorized(c)
		return
	}

	var milestone models.Milestone
	if err := h.db.First(&milestone, "id = ?", c.Query("id")).Error; err != nil {
		notFound(c, err, "No milestone with the given id.")
		return
	}

	if err := h.db.Delete(&milestone).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	response.JSON(c, http.StatusNoContent, nil, "milestone deleted successfully.")
}
