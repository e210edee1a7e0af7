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

// CreateProjectRequest represents the payload for creating a project.
// The caller becomes both owner and creator.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Members     []uint `json:"members"`
}

// UpdateProjectRequest represents the partial-update payload. The id
// travels in the body; absent fields are left untouched.
type UpdateProjectRequest struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Members     *[]uint `json:"members"`
}

// MemberDetail is the member summary embedded in project listings
type MemberDetail struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProjectListItem is one row of the projects listing
type ProjectListItem struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Owner         uint           `json:"owner"`
	MemberDetails []MemberDetail `json:"member_details"`
}

/*
*
ListProjects handles GET /api/projects
Returns all projects through the listing cache: a hit is served as-is,
a miss queries the database and repopulates the cache with no expiry.
*/
func (h *Handler) ListProjects(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.ListRoles...) {
		response.Unauthorized(c)
		return
	}

	if cached, ok := h.listings.Get(cache.KeyProjects); ok {
		response.OK(c, cached, "Showing all the Projects.")
		return
	}

	var projects []models.Project
	if err := h.db.Preload("Members").Find(&projects).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]ProjectListItem, 0, len(projects))
	for _, p := range projects {
		members := make([]MemberDetail, 0, len(p.Members))
		for _, m := range p.Members {
			members = append(members, MemberDetail{ID: m.ID, Username: m.Username, Email: m.Email})
		}
		items = append(items, ProjectListItem{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Owner:         p.OwnerID,
			MemberDetails: members,
		})
	}

	h.listings.Set(cache.KeyProjects, items)
	response.OK(c, items, "Showing all the Projects.")
}

/*
*
CreateProject handles POST /api/projects
Creates a project owned by the caller with the given member set.
*/
func (h *Handler) CreateProject(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.CreateRoles...) {
		response.Unauthorized(c)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	members, err := h.loadMembers(req.Members)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	callerID := middleware.CallerID(c)
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     callerID,
		CreatedByID: callerID,
		Members:     members,
	}
	if err := h.db.Create(&project).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.listings.Invalidate(cache.KeyProjects)
	response.Created(c, "Project created successfully.")
}

// UpdateProject handles PUT /api/projects
// Partially updates a project, including replacing its member set.
func (h *Handler) UpdateProject(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.UpdateRoles...) {
		response.Unauthorized(c)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID == 0 {
		response.Error(c, http.StatusBadRequest, "id is required.")
		return
	}

	var project models.Project
	if err := h.db.First(&project, req.ID).Error; err != nil {
		notFound(c, err, "No project with given id.")
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := h.db.Save(&project).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Members != nil {
		members, err := h.loadMembers(*req.Members)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.db.Model(&project).Association("Members").Replace(members); err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	h.listings.Invalidate(cache.KeyProjects)
	response.OK(c, nil, "Project updated successfully.")
}

// DeleteProject handles DELETE /api/projects?id=N
// Deleting a project cascades to its tasks and milestones.
func (h *Handler) DeleteProject(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.DeleteRoles...) {
		response.Unauthorized(c)
		return
	}

	var project models.Project
	if err := h.db.First(&project, "id = ?", c.Query("id")).Error; err != nil {
		notFound(c, err, "No project with the given id.")
		return
	}

	// The pure-Go sqlite driver does not enforce the FK cascade tags, so
	// dependent rows are removed in the same unit of work.
	if err := h.db.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.db.Where("project_id = ?", project.ID).Delete(&models.Milestone{}).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.db.Select("Members").Delete(&project).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.listings.Invalidate(cache.KeyProjects)
	h.listings.Invalidate(cache.KeyTasks)
	response.JSON(c, http.StatusNoContent, nil, "Project deleted successfully.")
}

// loadMembers resolves member ids to users, rejecting unknown ids.
func (h *Handler) loadMembers(ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := h.db.Find(&users, ids).Error; err != nil {
		return nil, err
	}
	if len(users) != len(uniqueIDs(ids)) {
		return nil, errUnknownMember
	}
	return users, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
