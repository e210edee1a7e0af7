package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"project-management-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestListNotifications_ReturnsOnlyOwn(t *testing.T) {
	h, db, _ := setupTest(t)
	r := newRouter(h)

	alice := seedUser(t, db, "alice", models.RoleMember)
	bob := seedUser(t, db, "bob", models.RoleMember)

	require.NoError(t, db.Create(&models.Notification{UserID: alice.ID, Subject: "New task assigned.", Body: "b1"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: bob.ID, Subject: "Task updated.", Body: "b2"}).Error)

	w := doJSON(r, http.MethodGet, "/api/notifications", tokenFor(t, alice), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []NotificationListItem
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &items))
	require.Len(t, items, 1)
	require.Equal(t, "New task assigned.", items[0].Subject)
}

func TestListNotifications_MemberOnly(t *testing.T) {
	h, db, _ := setupTest(t)
	r := newRouter(h)

	admin := seedUser(t, db, "root", models.RoleAdmin)
	w := doJSON(r, http.MethodGet, "/api/notifications", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
