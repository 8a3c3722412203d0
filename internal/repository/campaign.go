package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/models"
)

// CampaignRepository 战役仓储接口
type CampaignRepository interface {
	BaseRepository
	Create(ctx context.Context, campaign *models.Campaign) error
	Update(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id uint) (*models.Campaign, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Campaign, error)
	ListByUser(ctx context.Context, userID uint, p *Pagination) ([]*models.Campaign, error)
}

// campaignRepo 战役仓储实现
type campaignRepo struct {
	*BaseRepo
}

// NewCampaignRepository 创建战役仓储
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建战役
func (r *campaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	if err := r.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
	}
	return nil
}

// Update 保存战役全部字段
func (r *campaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabaseUpdate)
	}
	return nil
}

// FindByID 根据ID查找战役（不校验归属）
func (r *campaignRepo) FindByID(ctx context.Context, id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCampaignNotFound)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return &campaign, nil
}

// FindByIDAndUser 根据ID和归属用户查找战役
// ID不存在和归属他人返回同一个未找到错误，避免泄露他人记录的存在性
func (r *campaignRepo) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCampaignNotFound)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return &campaign, nil
}

// ListByUser 列出用户的战役，顺序由存储引擎决定
// 传入分页参数时只取对应页并回填总数，否则全量返回
func (r *campaignRepo) ListByUser(ctx context.Context, userID uint, p *Pagination) ([]*models.Campaign, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Where("user_id = ?", userID)

	if p != nil {
		if err := query.Count(&p.Total).Error; err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		query = query.Scopes(Paginate(p))
	}

	var campaigns []*models.Campaign
	if err := query.Find(&campaigns).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return campaigns, nil
}
