package authz

import (
	"testing"

	"Saut_Review/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPrivileged(t *testing.T) {
	var anon *Actor
	assert.False(t, anon.Privileged())
	assert.False(t, anon.Admin())

	assert.False(t, (&Actor{ID: 1, Role: model.RoleUser}).Privileged())
	assert.True(t, (&Actor{ID: 2, Role: model.RoleScholar}).Privileged())
	assert.True(t, (&Actor{ID: 3, Role: model.RoleAdmin}).Privileged())

	assert.False(t, (&Actor{ID: 2, Role: model.RoleScholar}).Admin())
	assert.True(t, (&Actor{ID: 3, Role: model.RoleAdmin}).Admin())
}

func TestOwns(t *testing.T) {
	rec := &model.Recitation{ID: 10, UserID: 7}

	assert.True(t, Owns(&Actor{ID: 7, Role: model.RoleUser}, rec))
	assert.False(t, Owns(&Actor{ID: 8, Role: model.RoleUser}, rec))
	assert.False(t, Owns(nil, rec))
	assert.False(t, Owns(&Actor{ID: 7, Role: model.RoleUser}, nil))
}

func TestOwnsAnonymousResource(t *testing.T) {
	// 匿名捐赠无归属者，任何人都不算 owner
	d := &model.Donation{ID: 1, UserID: nil}
	assert.False(t, Owns(&Actor{ID: 0, Role: model.RoleUser}, d))
	assert.False(t, Owns(&Actor{ID: 7, Role: model.RoleAdmin}, d))

	uid := uint64(7)
	owned := &model.Donation{ID: 2, UserID: &uid}
	assert.True(t, Owns(&Actor{ID: 7, Role: model.RoleUser}, owned))
}

func TestAuthorOfDistinctFromOwner(t *testing.T) {
	// 点评出自学者 5，关于用户 7 的诵读
	c := &model.Comment{ID: 1, ScholarID: 5, UserID: 7}

	assert.True(t, AuthorOf(&Actor{ID: 5, Role: model.RoleScholar}, c))
	assert.False(t, AuthorOf(&Actor{ID: 7, Role: model.RoleUser}, c))
	assert.False(t, AuthorOf(nil, c))

	assert.True(t, Owns(&Actor{ID: 7, Role: model.RoleUser}, c))
	assert.False(t, Owns(&Actor{ID: 5, Role: model.RoleScholar}, c))
}

func TestCanRead(t *testing.T) {
	rec := &model.Recitation{ID: 10, UserID: 7}

	assert.True(t, CanRead(&Actor{ID: 7, Role: model.RoleUser}, rec))
	assert.True(t, CanRead(&Actor{ID: 5, Role: model.RoleScholar}, rec))
	assert.True(t, CanRead(&Actor{ID: 9, Role: model.RoleAdmin}, rec))
	assert.False(t, CanRead(&Actor{ID: 8, Role: model.RoleUser}, rec))
	assert.False(t, CanRead(nil, rec))
}

func TestCanEdit(t *testing.T) {
	c := &model.Comment{ID: 1, ScholarID: 5, UserID: 7}

	assert.True(t, CanEdit(&Actor{ID: 5, Role: model.RoleScholar}, c))
	assert.True(t, CanEdit(&Actor{ID: 9, Role: model.RoleAdmin}, c))
	// 另一位学者不是作者，不能改
	assert.False(t, CanEdit(&Actor{ID: 6, Role: model.RoleScholar}, c))
	// 诵读归属者可读不可改
	assert.False(t, CanEdit(&Actor{ID: 7, Role: model.RoleUser}, c))
	assert.False(t, CanEdit(nil, c))
}
