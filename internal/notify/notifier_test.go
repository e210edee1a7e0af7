package notify

import (
	"sync"
	"testing"

	"project-management-api/internal/mailer"
	"project-management-api/internal/models"
	"project-management-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (s *recordingSender) Send(msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

func seedUsers(t *testing.T, db *gorm.DB) (creator, assignee models.User) {
	creator = models.User{Email: "carol@example.com", Username: "carol", Role: models.RoleAdmin, PasswordHash: "x"}
	assignee = models.User{Email: "alice@example.com", Username: "alice", Role: models.RoleMember, PasswordHash: "x"}
	require.NoError(t, db.Create(&creator).Error)
	require.NoError(t, db.Create(&assignee).Error)
	return creator, assignee
}

func TestTaskSaved_CreateWithAssignee(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	creator, assignee := seedUsers(t, db)

	sender := &recordingSender{}
	mail := mailer.New(sender)
	n := New(db, mail, nil)

	task := models.Task{ProjectID: 1, Name: "Deploy", AssignedToID: &assignee.ID, CreatedByID: creator.ID}
	require.NoError(t, db.Create(&task).Error)

	n.TaskSaved(&task, true)
	mail.Close()

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.Equal(t, assignee.ID, notifications[0].UserID)
	require.Equal(t, "New task assigned.", notifications[0].Subject)
	require.Equal(t, "Hi alice, A new task 'Deploy' has been assigned to you by carol.", notifications[0].Body)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "alice@example.com", msgs[0].To)
	require.Equal(t, notifications[0].Subject, msgs[0].Subject)
	require.Equal(t, notifications[0].Body, msgs[0].Body)
}

func TestTaskSaved_UpdateWithAssignee(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	creator, assignee := seedUsers(t, db)

	n := New(db, nil, nil)

	task := models.Task{ProjectID: 1, Name: "Deploy", AssignedToID: &assignee.ID, CreatedByID: creator.ID}
	require.NoError(t, db.Create(&task).Error)

	n.TaskSaved(&task, false)

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	require.Equal(t, "Task updated.", notification.Subject)
	require.Equal(t, "Hi alice, task 'Deploy' has been updated.", notification.Body)
}

func TestTaskSaved_NoAssigneeEmitsNothing(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	creator, _ := seedUsers(t, db)

	n := New(db, nil, nil)

	task := models.Task{ProjectID: 1, Name: "Deploy", CreatedByID: creator.ID}
	require.NoError(t, db.Create(&task).Error)

	n.TaskSaved(&task, true)
	n.TaskSaved(&task, false)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestMilestoneSaved_CreateAndUpdate(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	creator, assignee := seedUsers(t, db)

	n := New(db, nil, nil)

	milestone := models.Milestone{ProjectID: 1, Name: "Beta", AssignedToID: &assignee.ID, CreatedByID: creator.ID}
	require.NoError(t, db.Create(&milestone).Error)

	n.MilestoneSaved(&milestone, true)
	n.MilestoneSaved(&milestone, false)

	var notifications []models.Notification
	require.NoError(t, db.Order("id").Find(&notifications).Error)
	require.Len(t, notifications, 2)
	require.Equal(t, "New milestone assigned.", notifications[0].Subject)
	require.Equal(t, "milestone updated.", notifications[1].Subject)
}

func TestMilestoneSaved_NoAssigneeLogsAndSkips(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	creator, _ := seedUsers(t, db)

	n := New(db, nil, nil)

	milestone := models.Milestone{ProjectID: 1, Name: "Beta", CreatedByID: creator.ID}
	require.NoError(t, db.Create(&milestone).Error)

	// Must not panic; the write already succeeded and the emitter only logs.
	n.MilestoneSaved(&milestone, false)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	require.Zero(t, count)
}
