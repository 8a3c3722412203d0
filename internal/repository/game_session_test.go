package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/questforge/tabletop-server/internal/models"
)

// GameSessionRepositoryTestSuite 跑团会话仓储测试套件
type GameSessionRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     GameSessionRepository
	campaign *models.Campaign
}

func (suite *GameSessionRepositoryTestSuite) SetupTest() {
	suite.db = SetupTestDB()
	suite.repo = NewGameSessionRepository(suite.db)

	owner := CreateTestUser(suite.T(), suite.db, "owner", "owner@example.com")
	character := CreateTestCharacter(suite.T(), suite.db, owner.ID, "Hero")
	suite.campaign = CreateTestCampaign(suite.T(), suite.db, owner.ID, character.ID, "Chronicle")
}

func (suite *GameSessionRepositoryTestSuite) TearDownTest() {
	CleanupTestDB(suite.db)
}

// TestGameSessionRepository_Create 测试写入会话记录
func (suite *GameSessionRepositoryTestSuite) TestGameSessionRepository_Create() {
	ctx := context.Background()

	session := &models.GameSession{
		CampaignID:    suite.campaign.ID,
		SessionNumber: 1,
		Narrative:     "The party met at the crossroads inn.",
		DiceRolls: models.DiceRollLog{
			{
				RollType:  "initiative",
				Dice:      "1d20",
				Result:    14,
				Modifier:  2,
				Total:     16,
				Timestamp: time.Date(2024, 6, 1, 20, 30, 0, 0, time.UTC),
			},
		},
	}

	err := suite.repo.Create(ctx, session)
	assert.NoError(suite.T(), err)
	assert.NotZero(suite.T(), session.ID)

	sessions, err := suite.repo.ListByCampaign(ctx, suite.campaign.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), sessions, 1)
	assert.Len(suite.T(), sessions[0].DiceRolls, 1)
	assert.Equal(suite.T(), "initiative", sessions[0].DiceRolls[0].RollType)
	assert.Equal(suite.T(), 16, sessions[0].DiceRolls[0].Total)
}

// TestGameSessionRepository_ListOrder 会话按序号降序返回（最新在前）
func (suite *GameSessionRepositoryTestSuite) TestGameSessionRepository_ListOrder() {
	ctx := context.Background()

	for _, n := range []int{3, 1, 5, 2} {
		session := &models.GameSession{
			CampaignID:    suite.campaign.ID,
			SessionNumber: n,
			Narrative:     "Session narrative",
		}
		err := suite.repo.Create(ctx, session)
		assert.NoError(suite.T(), err)
	}

	sessions, err := suite.repo.ListByCampaign(ctx, suite.campaign.ID)
	assert.NoError(suite.T(), err)

	numbers := make([]int, 0, len(sessions))
	for _, s := range sessions {
		numbers = append(numbers, s.SessionNumber)
	}
	assert.Equal(suite.T(), []int{5, 3, 2, 1}, numbers)
}

// TestGameSessionRepository_ListEmpty 没有会话或战役不存在时返回空列表
func (suite *GameSessionRepositoryTestSuite) TestGameSessionRepository_ListEmpty() {
	ctx := context.Background()

	sessions, err := suite.repo.ListByCampaign(ctx, suite.campaign.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), sessions)

	sessions, err = suite.repo.ListByCampaign(ctx, 99999)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), sessions)
}

// TestGameSessionRepository_DuplicateNumbersAllowed 会话序号不要求唯一
func (suite *GameSessionRepositoryTestSuite) TestGameSessionRepository_DuplicateNumbersAllowed() {
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		session := &models.GameSession{
			CampaignID:    suite.campaign.ID,
			SessionNumber: 7,
			Narrative:     "Replayed session",
		}
		err := suite.repo.Create(ctx, session)
		assert.NoError(suite.T(), err)
	}

	sessions, err := suite.repo.ListByCampaign(ctx, suite.campaign.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), sessions, 2)
}

func TestGameSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GameSessionRepositoryTestSuite))
}
