package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/models"
)

// GameSessionRepository 跑团会话仓储接口
// 会话只追加不修改，所以没有Update和Delete
type GameSessionRepository interface {
	BaseRepository
	Create(ctx context.Context, session *models.GameSession) error
	ListByCampaign(ctx context.Context, campaignID uint) ([]*models.GameSession, error)
}

// gameSessionRepo 跑团会话仓储实现
type gameSessionRepo struct {
	*BaseRepo
}

// NewGameSessionRepository 创建跑团会话仓储
func NewGameSessionRepository(db *gorm.DB) GameSessionRepository {
	return &gameSessionRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 写入会话记录
func (r *gameSessionRepo) Create(ctx context.Context, session *models.GameSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
	}
	return nil
}

// ListByCampaign 按会话序号降序列出战役的全部会话（最新在前）
// 战役不存在时返回空列表而不是错误
func (r *gameSessionRepo) ListByCampaign(ctx context.Context, campaignID uint) ([]*models.GameSession, error) {
	var sessions []*models.GameSession
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("session_number DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return sessions, nil
}
