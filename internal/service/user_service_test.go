package service

import (
	"testing"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAdminOps(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewUserService(nil)

	// 用户管理只对平台管理员开放，学者也不行
	_, err := svc.List(actorFor(user), 1, 20)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = svc.List(actorFor(scholar), 1, 20)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	list, err := svc.List(actorFor(admin), 1, 20)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = svc.Get(actorFor(scholar), user.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	got, err := svc.Get(actorFor(admin), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	_, err = svc.Get(actorFor(admin), 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserUpdateRoleValidation(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user", model.RoleUser)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewUserService(nil)

	promote := model.RoleScholar
	_, err := svc.Update(actorFor(user), user.ID, &UserUpdate{Role: &promote})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	bad := model.Role("superuser")
	_, err = svc.Update(actorFor(admin), user.ID, &UserUpdate{Role: &bad})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	got, err := svc.Update(actorFor(admin), user.ID, &UserUpdate{Role: &promote})
	require.NoError(t, err)
	assert.Equal(t, model.RoleScholar, got.Role)
	// 没动的字段原样保留
	assert.True(t, got.IsActive)
	assert.True(t, got.IsVerified)

	deactivate := false
	got, err = svc.Update(actorFor(admin), user.ID, &UserUpdate{IsActive: &deactivate})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, model.RoleScholar, got.Role)
}
