package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/logger"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
)

// sessionService 会话记录服务实现
type sessionService struct {
	sessionRepo  repository.GameSessionRepository
	campaignRepo repository.CampaignRepository
}

// NewSessionService 创建会话记录服务
func NewSessionService(sessionRepo repository.GameSessionRepository, campaignRepo repository.CampaignRepository) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		campaignRepo: campaignRepo,
	}
}

// Append 向战役追加一条会话记录
// session_number 由调用方提供，不校验唯一性；记录写入后不可修改。
func (s *sessionService) Append(ctx context.Context, userID, campaignID uint, req *CreateSessionRequest) (*models.GameSession, error) {
	// 按归属确认战役存在，他人的战役视同不存在
	if _, err := s.campaignRepo.FindByIDAndUser(ctx, campaignID, userID); err != nil {
		return nil, err
	}

	session := &models.GameSession{
		CampaignID:    campaignID,
		SessionNumber: req.SessionNumber,
		Narrative:     req.Narrative,
		DiceRolls:     models.DiceRollLog(req.DiceRolls),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseInsert, "写入会话记录失败")
	}

	logger.Info("会话记录已写入",
		zap.Uint("session_id", session.ID),
		zap.Uint("campaign_id", campaignID),
		zap.Int("session_number", session.SessionNumber),
	)
	return session, nil
}

// ListByCampaign 按会话编号倒序列出战役的会话记录
// 查询是宽松的：战役不存在或属于他人时返回空列表而不是错误
func (s *sessionService) ListByCampaign(ctx context.Context, userID, campaignID uint) ([]*models.GameSession, error) {
	if _, err := s.campaignRepo.FindByIDAndUser(ctx, campaignID, userID); err != nil {
		if apperrors.Is(err, apperrors.ErrCampaignNotFound) {
			return []*models.GameSession{}, nil
		}
		return nil, err
	}
	return s.sessionRepo.ListByCampaign(ctx, campaignID)
}
