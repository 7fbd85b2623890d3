package service

import (
	"context"
	"errors"
	"testing"

	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxDrainMarksSent(t *testing.T) {
	db := setupTestDB(t)
	repo := &mysql.OutboxRepository{DB: db}
	require.NoError(t, repo.Insert("member_joined", 1, 10, map[string]any{"community_id": 10}))
	require.NoError(t, repo.Insert("recitation_reviewed", 2, 20, map[string]any{"recitation_id": 20}))

	var sent []string
	relayer := NewOutboxRelayer(func(ctx context.Context, ob *model.ReviewOutbox) error {
		sent = append(sent, ob.EventType)
		return nil
	})
	relayer.drainOnce(context.Background())

	assert.Equal(t, []string{"member_joined", "recitation_reviewed"}, sent)

	var pending int64
	require.NoError(t, db.Model(&model.ReviewOutbox{}).Where("status = 0").Count(&pending).Error)
	assert.Equal(t, int64(0), pending)

	// 再跑一轮不会重复投递
	relayer.drainOnce(context.Background())
	assert.Len(t, sent, 2)
}

func TestOutboxDrainKeepsFailedPending(t *testing.T) {
	db := setupTestDB(t)
	repo := &mysql.OutboxRepository{DB: db}
	require.NoError(t, repo.Insert("member_left", 1, 10, map[string]any{"community_id": 10}))

	relayer := NewOutboxRelayer(func(ctx context.Context, ob *model.ReviewOutbox) error {
		return errors.New("broker down")
	})
	relayer.drainOnce(context.Background())

	var ob model.ReviewOutbox
	require.NoError(t, db.First(&ob).Error)
	assert.Equal(t, int8(0), ob.Status)
	assert.Equal(t, 1, ob.Retry)
}
