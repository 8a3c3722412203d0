package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/logger"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
)

// campaignService 战役服务实现
type campaignService struct {
	campaignRepo  repository.CampaignRepository
	characterRepo repository.CharacterRepository
	userRepo      repository.UserRepository
}

// NewCampaignService 创建战役服务
func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	characterRepo repository.CharacterRepository,
	userRepo repository.UserRepository,
) CampaignService {
	return &campaignService{
		campaignRepo:  campaignRepo,
		characterRepo: characterRepo,
		userRepo:      userRepo,
	}
}

// Create 创建战役
// 校验顺序固定: 用户存在 -> 角色存在 -> 角色归属该用户。
// 归属校验失败返回明确的归属错误, 这是唯一主动区分"他人的资源"的入口。
// 新战役的状态总是active, 请求无法指定其他初始状态。
func (s *campaignService) Create(ctx context.Context, userID uint, req *CreateCampaignRequest) (*models.Campaign, error) {
	if !models.IsValidGenre(req.Genre) {
		return nil, apperrors.Newf(apperrors.ErrInvalidParam, "不支持的题材: %s", req.Genre)
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	character, err := s.characterRepo.FindByID(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}
	if character.UserID != userID {
		return nil, apperrors.New(apperrors.ErrOwnershipMismatch, "角色不属于该用户")
	}

	campaign := &models.Campaign{
		UserID:       userID,
		CharacterID:  req.CharacterID,
		Title:        req.Title,
		Genre:        req.Genre,
		Status:       models.CampaignStatusActive,
		Description:  req.Description,
		CurrentScene: req.CurrentScene,
		CampaignData: models.JSONMap(req.CampaignData),
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseInsert, "创建战役失败")
	}

	logger.Info("战役创建成功",
		zap.Uint("campaign_id", campaign.ID),
		zap.Uint("user_id", userID),
		zap.String("title", campaign.Title),
	)
	return campaign, nil
}

// Get 按归属查询战役，他人的战役与不存在的战役返回同样的错误
func (s *campaignService) Get(ctx context.Context, userID, campaignID uint) (*models.Campaign, error) {
	return s.campaignRepo.FindByIDAndUser(ctx, campaignID, userID)
}

// List 列出用户的战役，分页参数可为nil表示全量
func (s *campaignService) List(ctx context.Context, userID uint, p *repository.Pagination) ([]*models.Campaign, error) {
	return s.campaignRepo.ListByUser(ctx, userID, p)
}

// Update 部分更新战役
// 状态可以在任意合法值间直接切换，不设转换规则。
// 题材、角色和归属用户在创建后均不可更改。
func (s *campaignService) Update(ctx context.Context, userID, campaignID uint, req *UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByIDAndUser(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}

	if v, ok := req.Title.Value(); ok {
		campaign.Title = v
	} else if req.Title.IsNull() {
		return nil, apperrors.New(apperrors.ErrInvalidParam, "标题不能为null")
	}

	if v, ok := req.Status.Value(); ok {
		if !models.IsValidCampaignStatus(v) {
			return nil, apperrors.Newf(apperrors.ErrInvalidParam, "不支持的状态: %s", v)
		}
		campaign.Status = v
	} else if req.Status.IsNull() {
		return nil, apperrors.New(apperrors.ErrInvalidParam, "状态不能为null")
	}

	applyNullable(&campaign.Description, req.Description)
	applyNullable(&campaign.CurrentScene, req.CurrentScene)

	if req.CampaignData.IsSet() {
		if req.CampaignData.IsNull() {
			campaign.CampaignData = nil
		} else {
			v, _ := req.CampaignData.Value()
			campaign.CampaignData = models.JSONMap(v)
		}
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseUpdate, "更新战役失败")
	}
	return campaign, nil
}
