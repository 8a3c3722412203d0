package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/logger"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
)

// characterService 角色服务实现
type characterService struct {
	characterRepo repository.CharacterRepository
	userRepo      repository.UserRepository
}

// NewCharacterService 创建角色服务
func NewCharacterService(characterRepo repository.CharacterRepository, userRepo repository.UserRepository) CharacterService {
	return &characterService{
		characterRepo: characterRepo,
		userRepo:      userRepo,
	}
}

// intOr 取指针值，缺省时返回默认值
func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// validateAbilityScore 校验单项属性值范围
func validateAbilityScore(name string, score int) error {
	if score < models.AbilityScoreMin || score > models.AbilityScoreMax {
		return apperrors.Newf(apperrors.ErrInvalidParam,
			"%s必须在%d到%d之间", name, models.AbilityScoreMin, models.AbilityScoreMax)
	}
	return nil
}

// validateLevel 校验等级范围
func validateLevel(level int) error {
	if level < models.LevelMin || level > models.LevelMax {
		return apperrors.Newf(apperrors.ErrInvalidParam,
			"等级必须在%d到%d之间", models.LevelMin, models.LevelMax)
	}
	return nil
}

// Create 创建角色
// 缺省的属性值取10、等级取1、经验取0、护甲等级取10;
// 生命值缺省时按 等级*6+体质调整值 推导，且只在创建时推导一次。
func (s *characterService) Create(ctx context.Context, userID uint, req *CreateCharacterRequest) (*models.Character, error) {
	// 先确认归属用户存在
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	level := intOr(req.Level, 1)
	if err := validateLevel(level); err != nil {
		return nil, err
	}

	abilities := map[string]int{
		"力量": intOr(req.Strength, 10),
		"敏捷": intOr(req.Dexterity, 10),
		"体质": intOr(req.Constitution, 10),
		"智力": intOr(req.Intelligence, 10),
		"感知": intOr(req.Wisdom, 10),
		"魅力": intOr(req.Charisma, 10),
	}
	for name, score := range abilities {
		if err := validateAbilityScore(name, score); err != nil {
			return nil, err
		}
	}

	constitution := intOr(req.Constitution, 10)
	derivedHP := models.DerivedMaxHitPoints(level, constitution)

	character := &models.Character{
		UserID:           userID,
		Name:             req.Name,
		Race:             req.Race,
		CharacterClass:   req.CharacterClass,
		Level:            level,
		ExperiencePoints: intOr(req.ExperiencePoints, 0),
		Strength:         intOr(req.Strength, 10),
		Dexterity:        intOr(req.Dexterity, 10),
		Constitution:     constitution,
		Intelligence:     intOr(req.Intelligence, 10),
		Wisdom:           intOr(req.Wisdom, 10),
		Charisma:         intOr(req.Charisma, 10),
		HitPoints:        intOr(req.HitPoints, derivedHP),
		MaxHitPoints:     intOr(req.MaxHitPoints, derivedHP),
		ArmorClass:       intOr(req.ArmorClass, 10),
		Inventory:        models.JSONMap(req.Inventory),
		Equipment:        models.JSONMap(req.Equipment),
		Backstory:        req.Backstory,
		Notes:            req.Notes,
	}

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseInsert, "创建角色失败")
	}

	logger.Info("角色创建成功",
		zap.Uint("character_id", character.ID),
		zap.Uint("user_id", userID),
		zap.String("name", character.Name),
	)
	return character, nil
}

// Get 按归属查询角色，他人的角色与不存在的角色返回同样的错误
func (s *characterService) Get(ctx context.Context, userID, characterID uint) (*models.Character, error) {
	return s.characterRepo.FindByIDAndUser(ctx, characterID, userID)
}

// List 列出用户的角色，分页参数可为nil表示全量
func (s *characterService) List(ctx context.Context, userID uint, p *repository.Pagination) ([]*models.Character, error) {
	return s.characterRepo.ListByUser(ctx, userID, p)
}

// Update 部分更新角色
// 只修改请求中出现的字段；生命值不随等级或体质变化重新推导。
func (s *characterService) Update(ctx context.Context, userID, characterID uint, req *UpdateCharacterRequest) (*models.Character, error) {
	character, err := s.characterRepo.FindByIDAndUser(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}

	if v, ok := req.Name.Value(); ok {
		character.Name = v
	} else if req.Name.IsNull() {
		return nil, apperrors.New(apperrors.ErrInvalidParam, "名称不能为null")
	}

	applyNullable(&character.Race, req.Race)
	applyNullable(&character.CharacterClass, req.CharacterClass)
	applyNullable(&character.Backstory, req.Backstory)
	applyNullable(&character.Notes, req.Notes)

	if v, ok := req.Level.Value(); ok {
		if err := validateLevel(v); err != nil {
			return nil, err
		}
		character.Level = v
	}
	if v, ok := req.ExperiencePoints.Value(); ok {
		if v < 0 {
			return nil, apperrors.New(apperrors.ErrInvalidParam, "经验值不能为负")
		}
		character.ExperiencePoints = v
	}

	abilityTargets := []struct {
		name  string
		field Field[int]
		dst   *int
	}{
		{"力量", req.Strength, &character.Strength},
		{"敏捷", req.Dexterity, &character.Dexterity},
		{"体质", req.Constitution, &character.Constitution},
		{"智力", req.Intelligence, &character.Intelligence},
		{"感知", req.Wisdom, &character.Wisdom},
		{"魅力", req.Charisma, &character.Charisma},
	}
	for _, t := range abilityTargets {
		if v, ok := t.field.Value(); ok {
			if err := validateAbilityScore(t.name, v); err != nil {
				return nil, err
			}
			*t.dst = v
		}
	}

	if v, ok := req.HitPoints.Value(); ok {
		character.HitPoints = v
	}
	if v, ok := req.MaxHitPoints.Value(); ok {
		if v < 1 {
			return nil, apperrors.New(apperrors.ErrInvalidParam, "最大生命值至少为1")
		}
		character.MaxHitPoints = v
	}
	if v, ok := req.ArmorClass.Value(); ok {
		character.ArmorClass = v
	}

	if req.Inventory.IsSet() {
		if req.Inventory.IsNull() {
			character.Inventory = nil
		} else {
			v, _ := req.Inventory.Value()
			character.Inventory = models.JSONMap(v)
		}
	}
	if req.Equipment.IsSet() {
		if req.Equipment.IsNull() {
			character.Equipment = nil
		} else {
			v, _ := req.Equipment.Value()
			character.Equipment = models.JSONMap(v)
		}
	}

	if err := s.characterRepo.Update(ctx, character); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseUpdate, "更新角色失败")
	}
	return character, nil
}

// applyNullable 三态规则套用到可空字符串列
func applyNullable(dst **string, f Field[string]) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() {
		*dst = nil
		return
	}
	v, _ := f.Value()
	*dst = &v
}
