package service

import (
	"testing"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateGates(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewCommentService()

	_, err := svc.Create(actorFor(scholar), &CommentCreate{RecitationID: 9999, TextComment: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(actorFor(reciter), &CommentCreate{RecitationID: rec.ID, TextComment: "x"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	c, err := svc.Create(actorFor(scholar), &CommentCreate{
		RecitationID: rec.ID,
		Timestamp:    33.2,
		TextComment:  "elongate the madd here",
	})
	require.NoError(t, err)
	assert.Equal(t, scholar.ID, c.ScholarID)
	// 点评的归属冗余到诵读的主人
	assert.Equal(t, reciter.ID, c.UserID)
	assert.False(t, c.IsResolved)
}

func TestCommentResolvedFlipAuthorOrAdmin(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	author := seedUser(t, db, "author", model.RoleScholar)
	other := seedUser(t, db, "other", model.RoleScholar)
	admin := seedUser(t, db, "admin", model.RoleAdmin)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewCommentService()
	c, err := svc.Create(actorFor(author), &CommentCreate{RecitationID: rec.ID, TextComment: "note"})
	require.NoError(t, err)

	resolved := true

	// 诵读主人能读点评，但翻 resolved 属于编辑，不放行
	_, err = svc.Update(actorFor(reciter), c.ID, &CommentUpdate{IsResolved: &resolved})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = svc.Update(actorFor(other), c.ID, &CommentUpdate{IsResolved: &resolved})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	got, err := svc.Update(actorFor(author), c.ID, &CommentUpdate{IsResolved: &resolved})
	require.NoError(t, err)
	assert.True(t, got.IsResolved)
	// 没动的字段原样保留
	assert.Equal(t, "note", got.TextComment)

	unresolved := false
	got, err = svc.Update(actorFor(admin), c.ID, &CommentUpdate{IsResolved: &unresolved})
	require.NoError(t, err)
	assert.False(t, got.IsResolved)
}

func TestCommentListAccess(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	stranger := seedUser(t, db, "stranger", model.RoleUser)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewCommentService()
	_, err := svc.Create(actorFor(scholar), &CommentCreate{RecitationID: rec.ID, TextComment: "a"})
	require.NoError(t, err)
	_, err = svc.Create(actorFor(scholar), &CommentCreate{RecitationID: rec.ID, TextComment: "b"})
	require.NoError(t, err)

	list, err := svc.ListForRecitation(actorFor(reciter), rec.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.ListForRecitation(actorFor(stranger), rec.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	mine, err := svc.ListMine(actorFor(reciter), 1, 20)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListMine(actorFor(stranger), 1, 20)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCommentDelete(t *testing.T) {
	db := setupTestDB(t)
	reciter := seedUser(t, db, "reciter", model.RoleUser)
	author := seedUser(t, db, "author", model.RoleScholar)
	admin := seedUser(t, db, "admin", model.RoleAdmin)
	rec := seedRecitation(t, db, reciter.ID)

	svc := NewCommentService()
	c, err := svc.Create(actorFor(author), &CommentCreate{RecitationID: rec.ID, TextComment: "note"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(actorFor(reciter), c.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(actorFor(admin), c.ID))
	assert.ErrorIs(t, svc.Delete(actorFor(admin), c.ID), apperr.ErrNotFound)
}
