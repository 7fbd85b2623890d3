package service

import (
	"testing"

	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个测试一个独立的内存库，直接替换包级 DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Recitation{},
		&model.Comment{},
		&model.Marker{},
		&model.LoopRegion{},
		&model.Community{},
		&model.CommunityMembership{},
		&model.Donation{},
		&model.DonationCampaign{},
		&model.UserFeedback{},
		&model.ReviewOutbox{},
	))

	mysql.DB = db
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{
		Email:      username + "@example.com",
		Username:   username,
		Password:   "hashed",
		Role:       role,
		IsActive:   true,
		IsVerified: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func actorFor(u *model.User) *authz.Actor {
	return &authz.Actor{ID: u.ID, Role: u.Role}
}

func seedRecitation(t *testing.T, db *gorm.DB, userID uint64) *model.Recitation {
	t.Helper()
	rec := &model.Recitation{
		UserID:    userID,
		SurahName: "Al-Fatiha",
		AyahStart: 1,
		AyahEnd:   7,
		Status:    model.RecitationPending,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}
