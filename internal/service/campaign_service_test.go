package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
)

// CampaignServiceTestSuite 战役服务测试套件
type CampaignServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	svc       CampaignService
	user      *models.User
	character *models.Character
	ctx       context.Context
}

func (s *CampaignServiceTestSuite) SetupTest() {
	s.db = repository.SetupTestDB()
	s.svc = NewCampaignService(
		repository.NewCampaignRepository(s.db),
		repository.NewCharacterRepository(s.db),
		repository.NewUserRepository(s.db),
	)
	s.ctx = context.Background()
	s.user = repository.CreateTestUser(s.T(), s.db, "alice", "alice@example.com")
	s.character = repository.CreateTestCharacter(s.T(), s.db, s.user.ID, "Hero")
}

func (s *CampaignServiceTestSuite) TearDownTest() {
	repository.CleanupTestDB(s.db)
}

// TestCreateStatusAlwaysActive 新战役状态固定为active
func (s *CampaignServiceTestSuite) TestCreateStatusAlwaysActive() {
	campaign, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: s.character.ID,
		Title:       "迷雾之城",
		Genre:       models.GenreFantasy,
	})
	s.Require().NoError(err)
	s.Equal(models.CampaignStatusActive, campaign.Status)
}

// TestCreateInvalidGenre 非法题材
func (s *CampaignServiceTestSuite) TestCreateInvalidGenre() {
	_, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: s.character.ID,
		Title:       "X",
		Genre:       "space_opera",
	})
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrInvalidParam))
}

// TestCreateCheckOrder 校验顺序: 用户 -> 角色 -> 归属
func (s *CampaignServiceTestSuite) TestCreateCheckOrder() {
	// 用户不存在时先报用户错误, 即使角色也不存在
	_, err := s.svc.Create(s.ctx, 9999, &CreateCampaignRequest{
		CharacterID: 8888,
		Title:       "X",
		Genre:       models.GenreHorror,
	})
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrUserNotFound))

	// 角色不存在
	_, err = s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: 8888,
		Title:       "X",
		Genre:       models.GenreHorror,
	})
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrCharacterNotFound))

	// 角色存在但属于他人, 这里要报明确的归属错误
	other := repository.CreateTestUser(s.T(), s.db, "bob", "bob@example.com")
	foreign := repository.CreateTestCharacter(s.T(), s.db, other.ID, "Theirs")
	_, err = s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: foreign.ID,
		Title:       "X",
		Genre:       models.GenreHorror,
	})
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrOwnershipMismatch))
}

// TestGetForeignIndistinguishable 读路径上他人的战役与不存在一致
func (s *CampaignServiceTestSuite) TestGetForeignIndistinguishable() {
	other := repository.CreateTestUser(s.T(), s.db, "bob", "bob@example.com")
	foreignChar := repository.CreateTestCharacter(s.T(), s.db, other.ID, "Theirs")
	foreign := repository.CreateTestCampaign(s.T(), s.db, other.ID, foreignChar.ID, "Secret")

	_, errForeign := s.svc.Get(s.ctx, s.user.ID, foreign.ID)
	_, errMissing := s.svc.Get(s.ctx, s.user.ID, 9999)

	s.Require().Error(errForeign)
	s.Require().Error(errMissing)
	s.True(apperrors.Is(errForeign, apperrors.ErrCampaignNotFound))
	s.Equal(errMissing.Error(), errForeign.Error())
}

// TestUpdateStatusFreeTransition 状态在合法值间任意切换
func (s *CampaignServiceTestSuite) TestUpdateStatusFreeTransition() {
	campaign, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: s.character.ID,
		Title:       "循环",
		Genre:       models.GenreSciFi,
	})
	s.Require().NoError(err)

	for _, status := range []string{
		models.CampaignStatusCompleted,
		models.CampaignStatusActive,
		models.CampaignStatusPaused,
	} {
		var req UpdateCampaignRequest
		body, _ := json.Marshal(map[string]string{"status": status})
		s.Require().NoError(json.Unmarshal(body, &req))

		updated, err := s.svc.Update(s.ctx, s.user.ID, campaign.ID, &req)
		s.Require().NoError(err)
		s.Equal(status, updated.Status)
	}
}

// TestUpdateInvalidStatus 非法状态
func (s *CampaignServiceTestSuite) TestUpdateInvalidStatus() {
	campaign, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: s.character.ID,
		Title:       "X",
		Genre:       models.GenreWestern,
	})
	s.Require().NoError(err)

	var req UpdateCampaignRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"status":"archived"}`), &req))

	_, err = s.svc.Update(s.ctx, s.user.ID, campaign.ID, &req)
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrInvalidParam))
}

// TestUpdateGenreImmutable 更新请求中的题材被忽略
func (s *CampaignServiceTestSuite) TestUpdateGenreImmutable() {
	campaign, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID: s.character.ID,
		Title:       "蒸汽之心",
		Genre:       models.GenreSteampunk,
	})
	s.Require().NoError(err)

	var req UpdateCampaignRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"genre":"horror","title":"改名"}`), &req))

	updated, err := s.svc.Update(s.ctx, s.user.ID, campaign.ID, &req)
	s.Require().NoError(err)
	s.Equal("改名", updated.Title)
	s.Equal(models.GenreSteampunk, updated.Genre)
}

// TestCampaignDataRoundTrip 自由JSON数据深度等值往返
func (s *CampaignServiceTestSuite) TestCampaignDataRoundTrip() {
	data := map[string]interface{}{
		"quest":  "dragon",
		"gold":   float64(250),
		"flags":  []interface{}{"met_king", "found_map"},
		"nested": map[string]interface{}{"depth": float64(2)},
	}
	campaign, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID:  s.character.ID,
		Title:        "宝藏",
		Genre:        models.GenreFantasy,
		CampaignData: data,
	})
	s.Require().NoError(err)

	got, err := s.svc.Get(s.ctx, s.user.ID, campaign.ID)
	s.Require().NoError(err)
	s.Equal(models.JSONMap(data), got.CampaignData)
}

// TestUpdatePartialKeepsScene 部分更新不动未出现的字段
func (s *CampaignServiceTestSuite) TestUpdatePartialKeepsScene() {
	scene := "酒馆二楼"
	campaign, err := s.svc.Create(s.ctx, s.user.ID, &CreateCampaignRequest{
		CharacterID:  s.character.ID,
		Title:        "旧标题",
		Genre:        models.GenreModern,
		CurrentScene: &scene,
	})
	s.Require().NoError(err)

	var req UpdateCampaignRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"title":"新标题"}`), &req))

	updated, err := s.svc.Update(s.ctx, s.user.ID, campaign.ID, &req)
	s.Require().NoError(err)
	s.Equal("新标题", updated.Title)
	s.Require().NotNil(updated.CurrentScene)
	s.Equal("酒馆二楼", *updated.CurrentScene)
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
