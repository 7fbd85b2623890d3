package service

import (
	"testing"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerCreateGates(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewMarkerService()

	// 存在性先于权限：父诵读不存在时普通用户也拿到 NotFound
	_, err := svc.Create(actorFor(reciter), &MarkerCreate{RecitationID: 9999, Label: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(actorFor(reciter), &MarkerCreate{RecitationID: rec.ID, Label: "x"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	m, err := svc.Create(actorFor(scholar), &MarkerCreate{
		RecitationID: rec.ID,
		Timestamp:    12.5,
		Label:        "tajweed issue",
	})
	require.NoError(t, err)
	assert.Equal(t, scholar.ID, m.ScholarID)
	assert.Equal(t, "general", m.Category)
	assert.Equal(t, "#f59e0b", m.Color)
}

func TestMarkerUpdateAuthorOrAdmin(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	author := seedUser(t, db, "author", model.RoleScholar)
	other := seedUser(t, db, "other", model.RoleScholar)
	admin := seedUser(t, db, "admin", model.RoleAdmin)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewMarkerService()
	m, err := svc.Create(actorFor(author), &MarkerCreate{RecitationID: rec.ID, Label: "initial"})
	require.NoError(t, err)

	label := "renamed"

	// 非作者学者、诵读归属者都改不了
	_, err = svc.Update(actorFor(other), m.ID, &MarkerUpdate{Label: &label})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = svc.Update(actorFor(reciter), m.ID, &MarkerUpdate{Label: &label})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	got, err := svc.Update(actorFor(author), m.ID, &MarkerUpdate{Label: &label})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Label)
	// 没动的字段原样保留
	assert.Equal(t, "general", got.Category)
	assert.Equal(t, "#f59e0b", got.Color)

	// 平台管理员可删别人的标记
	assert.ErrorIs(t, svc.Delete(actorFor(other), m.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(actorFor(admin), m.ID))
	assert.ErrorIs(t, svc.Delete(actorFor(admin), m.ID), apperr.ErrNotFound)
}

func TestLoopCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewMarkerService()

	_, err := svc.CreateLoop(actorFor(scholar), &LoopRegionCreate{
		RecitationID: rec.ID, StartTime: 20, EndTime: 10, Label: "bad",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.CreateLoop(actorFor(scholar), &LoopRegionCreate{
		RecitationID: rec.ID, StartTime: 10, EndTime: 10, Label: "empty",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	l, err := svc.CreateLoop(actorFor(scholar), &LoopRegionCreate{
		RecitationID: rec.ID, StartTime: 10, EndTime: 20, Label: "practice",
	})
	require.NoError(t, err)
	assert.Equal(t, "#10b981", l.Color)
}

func TestLoopUpdateEffectivePair(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewMarkerService()
	l, err := svc.CreateLoop(actorFor(scholar), &LoopRegionCreate{
		RecitationID: rec.ID, StartTime: 10, EndTime: 20, Label: "practice",
	})
	require.NoError(t, err)

	// 只改一端，生效对 (25, 20) 非法，整条更新不落库
	badStart := 25.0
	_, err = svc.UpdateLoop(actorFor(scholar), l.ID, &LoopRegionUpdate{StartTime: &badStart})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var persisted model.LoopRegion
	require.NoError(t, db.First(&persisted, l.ID).Error)
	assert.Equal(t, 10.0, persisted.StartTime)
	assert.Equal(t, 20.0, persisted.EndTime)
	assert.Equal(t, "practice", persisted.Label)

	// 只改另一端，生效对 (10, 30) 合法
	newEnd := 30.0
	got, err := svc.UpdateLoop(actorFor(scholar), l.ID, &LoopRegionUpdate{EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.StartTime)
	assert.Equal(t, 30.0, got.EndTime)

	// 两端一起改，按新的一对判
	s, e := 40.0, 35.0
	_, err = svc.UpdateLoop(actorFor(scholar), l.ID, &LoopRegionUpdate{StartTime: &s, EndTime: &e})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	s, e = 35.0, 40.0
	got, err = svc.UpdateLoop(actorFor(scholar), l.ID, &LoopRegionUpdate{StartTime: &s, EndTime: &e})
	require.NoError(t, err)
	assert.Equal(t, 35.0, got.StartTime)
	assert.Equal(t, 40.0, got.EndTime)
	// 没动的字段原样保留
	assert.Equal(t, "practice", got.Label)
	assert.Equal(t, "#10b981", got.Color)
}

func TestLoopUpdateWithoutBoundsSkipsRangeCheck(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewMarkerService()
	l, err := svc.CreateLoop(actorFor(scholar), &LoopRegionCreate{
		RecitationID: rec.ID, StartTime: 10, EndTime: 20, Label: "practice",
	})
	require.NoError(t, err)

	active := true
	got, err := svc.UpdateLoop(actorFor(scholar), l.ID, &LoopRegionUpdate{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 10.0, got.StartTime)
	assert.Equal(t, 20.0, got.EndTime)
}

func TestLoopListRequiresReadAccess(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	stranger := seedUser(t, db, "stranger", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewMarkerService()
	_, err := svc.CreateLoop(actorFor(scholar), &LoopRegionCreate{
		RecitationID: rec.ID, StartTime: 1, EndTime: 2, Label: "l",
	})
	require.NoError(t, err)

	list, err := svc.ListLoopsForRecitation(actorFor(reciter), rec.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListLoopsForRecitation(actorFor(stranger), rec.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
