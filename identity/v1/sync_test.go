package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

func TestSyncUsers(t *testing.T) {
	directory := []UserDTO{
		{ID: "worker-1", FirstName: "Dana", Surname: "Ruiz", Permission: "USER"},
		{ID: "worker-2", FirstName: "Miles", Surname: "Okafor", Email: utils.Ptr("miles@shiftclock.app"), Permission: "USER"},
		{ID: "manager-1", FirstName: "Priya", Surname: "Shah", Permission: "MANAGER"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(userPageDTO{Data: directory, Total: len(directory)})
	}))
	defer server.Close()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	// pre-existing user with local state that must survive the sync
	require.NoError(t, db.Create(&models.User{
		ID:           "worker-1",
		FirstName:    "Outdated",
		Surname:      "Name",
		Permission:   "USER",
		SignatureKey: utils.Ptr("signatures/worker-1.png"),
	}).Error)

	client := NewIdentityClient(server.URL, "test-token")
	synced, err := SyncUsers(context.Background(), client, db)
	require.NoError(t, err)
	assert.Equal(t, 3, synced)

	var users []models.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 3)

	var worker1 models.User
	require.NoError(t, db.First(&worker1, "id = ?", "worker-1").Error)
	assert.Equal(t, "Dana", worker1.FirstName)
	require.NotNil(t, worker1.SignatureKey)
	assert.Equal(t, "signatures/worker-1.png", *worker1.SignatureKey)
}

func TestSyncUsersServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	client := NewIdentityClient(server.URL, "")
	_, err = SyncUsers(context.Background(), client, db)
	assert.Error(t, err)
}
