package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
)

// CharacterServiceTestSuite 角色服务测试套件
type CharacterServiceTestSuite struct {
	suite.Suite
	db   *gorm.DB
	svc  CharacterService
	user *models.User
	ctx  context.Context
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.db = repository.SetupTestDB()
	s.svc = NewCharacterService(
		repository.NewCharacterRepository(s.db),
		repository.NewUserRepository(s.db),
	)
	s.ctx = context.Background()
	s.user = repository.CreateTestUser(s.T(), s.db, "alice", "alice@example.com")
}

func (s *CharacterServiceTestSuite) TearDownTest() {
	repository.CleanupTestDB(s.db)
}

// TestCreateWithDefaults 全部缺省时的默认值推导
func (s *CharacterServiceTestSuite) TestCreateWithDefaults() {
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{Name: "Pip"})
	s.Require().NoError(err)

	s.Equal(1, char.Level)
	s.Equal(0, char.ExperiencePoints)
	s.Equal(10, char.Strength)
	s.Equal(10, char.Constitution)
	s.Equal(10, char.ArmorClass)
	// 1级 体质10: 6 + 0 = 6
	s.Equal(6, char.HitPoints)
	s.Equal(6, char.MaxHitPoints)
}

// TestCreateDerivedHitPoints 按等级和体质推导生命值
func (s *CharacterServiceTestSuite) TestCreateDerivedHitPoints() {
	level := 3
	con := 14
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{
		Name:         "Bruenor",
		Level:        &level,
		Constitution: &con,
	})
	s.Require().NoError(err)

	// 3*6 + floor((14-10)/2) = 18 + 2 = 20
	s.Equal(20, char.MaxHitPoints)
	s.Equal(20, char.HitPoints)
}

// TestCreateHitPointFloor 推导结果的下限是1
func (s *CharacterServiceTestSuite) TestCreateHitPointFloor() {
	level := 1
	con := 1
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{
		Name:         "Frail",
		Level:        &level,
		Constitution: &con,
	})
	s.Require().NoError(err)

	// 1*6 + floor((1-10)/2) = 6 - 5 = 1
	s.Equal(1, char.MaxHitPoints)
}

// TestCreateExplicitHitPointsWin 显式提供的生命值优先于推导
func (s *CharacterServiceTestSuite) TestCreateExplicitHitPointsWin() {
	hp := 42
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{
		Name:      "Tank",
		HitPoints: &hp,
	})
	s.Require().NoError(err)

	s.Equal(42, char.HitPoints)
	// max_hit_points 未提供, 仍走推导
	s.Equal(6, char.MaxHitPoints)
}

// TestCreateUnknownUser 归属用户不存在
func (s *CharacterServiceTestSuite) TestCreateUnknownUser() {
	_, err := s.svc.Create(s.ctx, 9999, &CreateCharacterRequest{Name: "Ghost"})
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrUserNotFound))
}

// TestCreateAbilityOutOfRange 属性值越界
func (s *CharacterServiceTestSuite) TestCreateAbilityOutOfRange() {
	str := 21
	_, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{
		Name:     "Hulk",
		Strength: &str,
	})
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrInvalidParam))
}

// TestUpdatePartial 部分更新只动出现的字段
func (s *CharacterServiceTestSuite) TestUpdatePartial() {
	race := "dwarf"
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{Name: "Old", Race: &race})
	s.Require().NoError(err)
	createdUpdatedAt := char.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	var req UpdateCharacterRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"name":"New"}`), &req))

	updated, err := s.svc.Update(s.ctx, s.user.ID, char.ID, &req)
	s.Require().NoError(err)

	s.Equal("New", updated.Name)
	s.Require().NotNil(updated.Race)
	s.Equal("dwarf", *updated.Race)
	s.Equal(char.Level, updated.Level)
	s.True(updated.UpdatedAt.After(createdUpdatedAt))
}

// TestUpdateExplicitNullClears 显式null清空可空字段
func (s *CharacterServiceTestSuite) TestUpdateExplicitNullClears() {
	race := "elf"
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{Name: "Fey", Race: &race})
	s.Require().NoError(err)

	var req UpdateCharacterRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"race":null}`), &req))

	updated, err := s.svc.Update(s.ctx, s.user.ID, char.ID, &req)
	s.Require().NoError(err)
	s.Nil(updated.Race)
}

// TestUpdateNoHitPointRecompute 升级不重新推导生命值
func (s *CharacterServiceTestSuite) TestUpdateNoHitPointRecompute() {
	char, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{Name: "Stable"})
	s.Require().NoError(err)
	s.Equal(6, char.MaxHitPoints)

	var req UpdateCharacterRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"level":10,"constitution":18}`), &req))

	updated, err := s.svc.Update(s.ctx, s.user.ID, char.ID, &req)
	s.Require().NoError(err)
	s.Equal(10, updated.Level)
	s.Equal(18, updated.Constitution)
	s.Equal(6, updated.MaxHitPoints)
}

// TestUpdateForeignCharacter 他人的角色视同不存在
func (s *CharacterServiceTestSuite) TestUpdateForeignCharacter() {
	other := repository.CreateTestUser(s.T(), s.db, "bob", "bob@example.com")
	char := repository.CreateTestCharacter(s.T(), s.db, other.ID, "Theirs")

	var req UpdateCharacterRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"name":"Mine"}`), &req))

	_, err := s.svc.Update(s.ctx, s.user.ID, char.ID, &req)
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.ErrCharacterNotFound))
}

// TestGetAndList 查询与列表
func (s *CharacterServiceTestSuite) TestGetAndList() {
	c1, err := s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{Name: "A"})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctx, s.user.ID, &CreateCharacterRequest{Name: "B"})
	s.Require().NoError(err)

	got, err := s.svc.Get(s.ctx, s.user.ID, c1.ID)
	s.Require().NoError(err)
	s.Equal("A", got.Name)

	list, err := s.svc.List(s.ctx, s.user.ID, nil)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func TestCharacterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}
