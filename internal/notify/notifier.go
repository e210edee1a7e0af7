package notify

import (
	"encoding/json"
	"fmt"

	"project-management-api/internal/logging"
	"project-management-api/internal/mailer"
	"project-management-api/internal/models"
	"project-management-api/internal/realtime"

	"gorm.io/gorm"
)

// Notifier turns successful task/milestone writes into notification rows,
// queued emails and websocket pushes. It is invoked by the entity
// handlers right after the write commits; every failure in here is logged
// and swallowed so the triggering request still reports success.
type Notifier struct {
	db     *gorm.DB
	mailer *mailer.Mailer
	hub    *realtime.Hub
}

// New wires a Notifier. hub may be nil (tests that don't care about
// websocket delivery).
func New(db *gorm.DB, m *mailer.Mailer, hub *realtime.Hub) *Notifier {
	return &Notifier{db: db, mailer: m, hub: hub}
}

// TaskSaved emits the notification for a task write. A task without an
// assignee emits nothing.
func (n *Notifier) TaskSaved(task *models.Task, created bool) {
	if task.AssignedToID == nil {
		return
	}
	assignee, err := n.loadUser(*task.AssignedToID)
	if err != nil {
		logging.Logger().WithError(err).WithField("task", task.ID).
			Error("failed to load task assignee for notification")
		return
	}

	if created {
		creator, err := n.loadUser(task.CreatedByID)
		if err != nil {
			logging.Logger().WithError(err).WithField("task", task.ID).
				Error("failed to load task creator for notification")
			return
		}
		n.emit(assignee, "New task assigned.",
			fmt.Sprintf("Hi %s, A new task '%s' has been assigned to you by %s.",
				assignee.Username, task.Name, creator.Username))
		return
	}

	n.emit(assignee, "Task updated.",
		fmt.Sprintf("Hi %s, task '%s' has been updated.", assignee.Username, task.Name))
}

// MilestoneSaved emits the notification for a milestone write.
// Milestones are expected to carry an assignee; one without logs the
// inconsistency and emits nothing.
func (n *Notifier) MilestoneSaved(milestone *models.Milestone, created bool) {
	if milestone.AssignedToID == nil {
		logging.Logger().WithField("milestone", milestone.ID).
			Error("milestone has no assignee, skipping notification")
		return
	}
	assignee, err := n.loadUser(*milestone.AssignedToID)
	if err != nil {
		logging.Logger().WithError(err).WithField("milestone", milestone.ID).
			Error("failed to load milestone assignee for notification")
		return
	}

	if created {
		creator, err := n.loadUser(milestone.CreatedByID)
		if err != nil {
			logging.Logger().WithError(err).WithField("milestone", milestone.ID).
				Error("failed to load milestone creator for notification")
			return
		}
		n.emit(assignee, "New milestone assigned.",
			fmt.Sprintf("Hi %s, A new milestone '%s' has been assigned to you by %s.",
				assignee.Username, milestone.Name, creator.Username))
		return
	}

	n.emit(assignee, "milestone updated.",
		fmt.Sprintf("Hi %s, milestone '%s' has been updated.", assignee.Username, milestone.Name))
}

// emit persists the notification, then fans out to email and websocket.
// Email delivery is asynchronous and never rolls anything back.
func (n *Notifier) emit(recipient *models.User, subject, body string) {
	notification := models.Notification{
		UserID:  recipient.ID,
		Subject: subject,
		Body:    body,
	}
	if err := n.db.Create(&notification).Error; err != nil {
		logging.Logger().WithError(err).WithField("user", recipient.ID).
			Error("failed to persist notification")
		return
	}

	if n.mailer != nil {
		n.mailer.Enqueue(mailer.Message{
			To:      recipient.Email,
			Subject: subject,
			Body:    body,
		})
	}

	if n.hub != nil {
		evt := map[string]any{
			"type":    "notification",
			"subject": subject,
			"body":    body,
		}
		if bytes, err := json.Marshal(evt); err == nil {
			n.hub.Broadcast(recipient.ID, bytes)
		}
	}
}

func (n *Notifier) loadUser(id uint) (*models.User, error) {
	var user models.User
	if err := n.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
