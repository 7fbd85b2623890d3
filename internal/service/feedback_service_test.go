package service

import (
	"testing"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackCreateAnonymous(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user", model.RoleUser)

	svc := NewFeedbackService()

	f, err := svc.Create(nil, &FeedbackCreate{
		FeedbackType: "bug_report", Title: "player stalls", Description: "audio stops at 0:30",
	})
	require.NoError(t, err)
	assert.Nil(t, f.UserID)
	assert.Equal(t, "medium", f.Priority)
	assert.Equal(t, model.FeedbackOpen, f.Status)

	f, err = svc.Create(actorFor(user), &FeedbackCreate{
		FeedbackType: "feature_request", Title: "dark mode", Description: "please", Priority: "low",
	})
	require.NoError(t, err)
	require.NotNil(t, f.UserID)
	assert.Equal(t, user.ID, *f.UserID)
	assert.Equal(t, "low", f.Priority)
}

func TestFeedbackOwnerEditOnlyWhileOpen(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user", model.RoleUser)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewFeedbackService()
	f, err := svc.Create(actorFor(user), &FeedbackCreate{
		FeedbackType: "general", Title: "typo", Description: "surah name misspelled",
	})
	require.NoError(t, err)

	title := "typo on recitation page"

	got, err := svc.Update(actorFor(user), f.ID, &FeedbackUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)

	// 提交者碰不了状态字段
	closed := model.FeedbackClosed
	_, err = svc.Update(actorFor(user), f.ID, &FeedbackUpdate{Status: &closed})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// 管理员关掉之后，提交者连标题都改不了
	_, err = svc.Update(actorFor(admin), f.ID, &FeedbackUpdate{Status: &closed})
	require.NoError(t, err)

	_, err = svc.Update(actorFor(user), f.ID, &FeedbackUpdate{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// 管理员不受限
	desc := "fixed wording"
	got, err = svc.Update(actorFor(admin), f.ID, &FeedbackUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, got.Description)
}

func TestFeedbackAdminResponseStampsResolver(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user", model.RoleUser)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewFeedbackService()
	f, err := svc.Create(actorFor(user), &FeedbackCreate{
		FeedbackType: "bug_report", Title: "crash", Description: "on login",
	})
	require.NoError(t, err)

	resp := "fixed in next release"
	resolved := model.FeedbackResolved
	got, err := svc.Update(actorFor(admin), f.ID, &FeedbackUpdate{
		Status: &resolved, AdminResponse: &resp,
	})
	require.NoError(t, err)
	assert.Equal(t, model.FeedbackResolved, got.Status)
	assert.Equal(t, resp, got.AdminResponse)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, admin.ID, *got.ResolvedBy)
	assert.NotNil(t, got.ResolvedAt)
}

func TestFeedbackListScoping(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice", model.RoleUser)
	bob := seedUser(t, db, "bob", model.RoleUser)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewFeedbackService()
	_, err := svc.Create(actorFor(alice), &FeedbackCreate{FeedbackType: "general", Title: "a", Description: "a"})
	require.NoError(t, err)
	_, err = svc.Create(actorFor(bob), &FeedbackCreate{FeedbackType: "bug_report", Title: "b", Description: "b"})
	require.NoError(t, err)
	_, err = svc.Create(nil, &FeedbackCreate{FeedbackType: "general", Title: "c", Description: "c"})
	require.NoError(t, err)

	all, err := svc.List(actorFor(admin), mysql.FeedbackFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := svc.List(actorFor(alice), mysql.FeedbackFilter{}, 1, 20)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "a", own[0].Title)

	bugs, err := svc.List(actorFor(admin), mysql.FeedbackFilter{Category: "bug_report"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, bugs, 1)
}

func TestFeedbackGetAndStats(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice", model.RoleUser)
	bob := seedUser(t, db, "bob", model.RoleUser)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewFeedbackService()
	f, err := svc.Create(actorFor(alice), &FeedbackCreate{FeedbackType: "general", Title: "a", Description: "a"})
	require.NoError(t, err)

	_, err = svc.Get(actorFor(alice), f.ID)
	require.NoError(t, err)
	_, err = svc.Get(actorFor(bob), f.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = svc.Get(actorFor(admin), 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Stats(actorFor(alice))
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	stats, err := svc.Stats(actorFor(admin))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalFeedback)
	assert.Equal(t, int64(1), stats.OpenFeedback)
	assert.Equal(t, int64(1), stats.GeneralFeedback)
}
