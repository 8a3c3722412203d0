package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/models"
)

// CharacterRepositoryTestSuite 角色仓储测试套件
type CharacterRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	repo  CharacterRepository
	owner *models.User
	other *models.User
}

func (suite *CharacterRepositoryTestSuite) SetupTest() {
	suite.db = SetupTestDB()
	suite.repo = NewCharacterRepository(suite.db)
	suite.owner = CreateTestUser(suite.T(), suite.db, "owner", "owner@example.com")
	suite.other = CreateTestUser(suite.T(), suite.db, "other", "other@example.com")
}

func (suite *CharacterRepositoryTestSuite) TearDownTest() {
	CleanupTestDB(suite.db)
}

// TestCharacterRepository_CreateAndFind 测试创建和查找角色
func (suite *CharacterRepositoryTestSuite) TestCharacterRepository_CreateAndFind() {
	ctx := context.Background()

	race := "elf"
	character := &models.Character{
		UserID:       suite.owner.ID,
		Name:         "Aranel",
		Race:         &race,
		Level:        3,
		Strength:     12,
		Dexterity:    16,
		Constitution: 14,
		Intelligence: 10,
		Wisdom:       13,
		Charisma:     8,
		HitPoints:    20,
		MaxHitPoints: 20,
		ArmorClass:   15,
	}

	err := suite.repo.Create(ctx, character)
	assert.NoError(suite.T(), err)
	assert.NotZero(suite.T(), character.ID)

	found, err := suite.repo.FindByID(ctx, character.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Aranel", found.Name)
	assert.NotNil(suite.T(), found.Race)
	assert.Equal(suite.T(), "elf", *found.Race)
	assert.Nil(suite.T(), found.CharacterClass)
}

// TestCharacterRepository_FindByIDAndUser 归属过滤：他人的角色和不存在的角色表现一致
func (suite *CharacterRepositoryTestSuite) TestCharacterRepository_FindByIDAndUser() {
	ctx := context.Background()

	character := CreateTestCharacter(suite.T(), suite.db, suite.owner.ID, "Mine")

	found, err := suite.repo.FindByIDAndUser(ctx, character.ID, suite.owner.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), character.ID, found.ID)

	// 归属他人
	_, err = suite.repo.FindByIDAndUser(ctx, character.ID, suite.other.ID)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrCharacterNotFound))

	// 完全不存在
	_, err = suite.repo.FindByIDAndUser(ctx, 99999, suite.owner.ID)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrCharacterNotFound))
}

// TestCharacterRepository_ListByUser 列表只包含本人的角色
func (suite *CharacterRepositoryTestSuite) TestCharacterRepository_ListByUser() {
	ctx := context.Background()

	CreateTestCharacter(suite.T(), suite.db, suite.owner.ID, "First")
	CreateTestCharacter(suite.T(), suite.db, suite.owner.ID, "Second")
	CreateTestCharacter(suite.T(), suite.db, suite.other.ID, "NotMine")

	characters, err := suite.repo.ListByUser(ctx, suite.owner.ID, nil)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), characters, 2)

	for _, c := range characters {
		assert.Equal(suite.T(), suite.owner.ID, c.UserID)
	}
}

// TestCharacterRepository_ListByUserPaginated 分页取页并回填总数
func (suite *CharacterRepositoryTestSuite) TestCharacterRepository_ListByUserPaginated() {
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		CreateTestCharacter(suite.T(), suite.db, suite.owner.ID, name)
	}

	p := NewPagination(1, 2)
	characters, err := suite.repo.ListByUser(ctx, suite.owner.ID, p)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), characters, 2)
	assert.Equal(suite.T(), int64(5), p.Total)

	// 最后一页只剩一条
	p = NewPagination(3, 2)
	characters, err = suite.repo.ListByUser(ctx, suite.owner.ID, p)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), characters, 1)
}

// TestCharacterRepository_JSONFieldsRoundTrip 库存和装备JSON字段的往返保真
func (suite *CharacterRepositoryTestSuite) TestCharacterRepository_JSONFieldsRoundTrip() {
	ctx := context.Background()

	character := CreateTestCharacter(suite.T(), suite.db, suite.owner.ID, "Packrat")
	character.Inventory = models.JSONMap{
		"gold":    float64(42),
		"potions": []interface{}{"healing", "mana"},
		"pack": map[string]interface{}{
			"rope_ft": float64(50),
			"rations": map[string]interface{}{"days": float64(3)},
		},
	}
	err := suite.repo.Update(ctx, character)
	assert.NoError(suite.T(), err)

	found, err := suite.repo.FindByID(ctx, character.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), character.Inventory, found.Inventory)
	assert.Nil(suite.T(), found.Equipment)
}

func TestCharacterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterRepositoryTestSuite))
}
