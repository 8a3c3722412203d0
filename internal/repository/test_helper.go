package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/questforge/tabletop-server/internal/models"
)

// SetupTestDB 为测试套件设置测试数据库
// 使用内存数据库（更快，不需要文件系统，在所有环境中都能工作）
func SetupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// 自动迁移所有模型（顺序遵循外键依赖）
	err = db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Campaign{},
		&models.GameSession{},
	)
	if err != nil {
		panic(err)
	}

	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(db *gorm.DB) {
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// CreateTestUser 创建测试用户
func CreateTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$test-hash",
	}
	err := db.Create(user).Error
	require.NoError(t, err)
	return user
}

// CreateTestCharacter 创建测试角色
func CreateTestCharacter(t *testing.T, db *gorm.DB, userID uint, name string) *models.Character {
	character := &models.Character{
		UserID:       userID,
		Name:         name,
		Level:        1,
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
		HitPoints:    7,
		MaxHitPoints: 7,
		ArmorClass:   10,
	}
	err := db.Create(character).Error
	require.NoError(t, err)
	return character
}

// CreateTestCampaign 创建测试战役
func CreateTestCampaign(t *testing.T, db *gorm.DB, userID, characterID uint, title string) *models.Campaign {
	campaign := &models.Campaign{
		UserID:      userID,
		CharacterID: characterID,
		Title:       title,
		Genre:       models.GenreFantasy,
		Status:      models.CampaignStatusActive,
	}
	err := db.Create(campaign).Error
	require.NoError(t, err)
	return campaign
}
