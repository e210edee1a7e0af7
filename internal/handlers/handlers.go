package handlers

import (
	"errors"
	"net/http"

	"project-management-api/internal/cache"
	"project-management-api/internal/notify"
	"project-management-api/internal/realtime"
	"project-management-api/internal/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the dependencies shared by every endpoint: the
// database, the listing cache and the notification emitter. Tests build
// one around an in-memory database and a recording mailer.
type Handler struct {
	db       *gorm.DB
	listings *cache.Listings
	notifier *notify.Notifier
	hub      *realtime.Hub
}

// New wires a Handler. hub may be nil when websocket push is not needed.
func New(db *gorm.DB, listings *cache.Listings, notifier *notify.Notifier, hub *realtime.Hub) *Handler {
	return &Handler{db: db, listings: listings, notifier: notifier, hub: hub}
}

// userBelongsToProject reports whether the user is in the project's
// member set. This is the assignment validator: a task or milestone may
// only be assigned to a member of its parent project.
func (h *Handler) userBelongsToProject(userID, projectID uint) (bool, error) {
	var count int64
	err := h.db.Table("project_members").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// assignmentErrMessage is returned whenever the assignment validator rejects.
const assignmentErrMessage = "This user not belong to the parent project."

// errUnknownMember rejects member lists referencing nonexistent users.
var errUnknownMember = errors.New("one or more member ids do not exist")

// notFound maps a gorm lookup error onto the per-entity 404 message,
// falling back to a 400 with the raw message for anything unexpected.
func notFound(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, message)
		return
	}
	response.Error(c, http.StatusBadRequest, err.Error())
}
