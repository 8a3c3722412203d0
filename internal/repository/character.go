package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/models"
)

// CharacterRepository 角色仓储接口
type CharacterRepository interface {
	BaseRepository
	Create(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, character *models.Character) error
	FindByID(ctx context.Context, id uint) (*models.Character, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Character, error)
	ListByUser(ctx context.Context, userID uint, p *Pagination) ([]*models.Character, error)
}

// characterRepo 角色仓储实现
type characterRepo struct {
	*BaseRepo
}

// NewCharacterRepository 创建角色仓储
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建角色
func (r *characterRepo) Create(ctx context.Context, character *models.Character) error {
	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
	}
	return nil
}

// Update 保存角色全部字段
func (r *characterRepo) Update(ctx context.Context, character *models.Character) error {
	if err := r.db.WithContext(ctx).Save(character).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabaseUpdate)
	}
	return nil
}

// FindByID 根据ID查找角色（不校验归属）
func (r *characterRepo) FindByID(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).First(&character, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCharacterNotFound)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return &character, nil
}

// FindByIDAndUser 根据ID和归属用户查找角色
// ID不存在和归属他人走同一条查询路径，调用方无法区分两种情况
func (r *characterRepo) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCharacterNotFound)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return &character, nil
}

// ListByUser 列出用户的角色
// 传入分页参数时只取对应页并回填总数，否则全量返回
func (r *characterRepo) ListByUser(ctx context.Context, userID uint, p *Pagination) ([]*models.Character, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Character{}).
		Where("user_id = ?", userID)

	if p != nil {
		if err := query.Count(&p.Total).Error; err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		query = query.Scopes(Paginate(p))
	}

	var characters []*models.Character
	if err := query.Find(&characters).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return characters, nil
}
