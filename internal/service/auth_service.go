package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
	"github.com/questforge/tabletop-server/internal/logger"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
	"github.com/questforge/tabletop-server/internal/utils"
)

// authService 认证服务实现
type authService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.UserRepository, cfg *Config) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: utils.NewJWTManager(cfg.JWTSecret, cfg.AccessExpiry, cfg.RefreshExpiry),
	}
}

// Register 注册新用户
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	// 用户名和邮箱都要求唯一
	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.New(apperrors.ErrAlreadyExists, "用户名已被占用")
	} else if !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.New(apperrors.ErrAlreadyExists, "邮箱已被注册")
	} else if !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "密码加密失败")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseInsert, "创建用户失败")
	}

	logger.Info("用户注册成功",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return s.issueTokens(user)
}

// Login 用户登录
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			// 不暴露用户是否存在
			return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
	}

	return s.issueTokens(user)
}

// Refresh 用刷新令牌换取新的访问令牌
// 刷新令牌保持不变，直到自身过期
func (s *authService) Refresh(ctx context.Context, req *RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTokenInvalid)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.RefreshAccessToken(req.RefreshToken, user.Username, user.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTokenInvalid)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
		User:         user,
	}, nil
}

// ValidateToken 验证访问令牌并返回对应用户
func (s *authService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTokenInvalid)
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// issueTokens 签发访问和刷新令牌
func (s *authService) issueTokens(user *models.User) (*AuthResponse, error) {
	sessionID := uuid.NewString()

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Email, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "生成访问令牌失败")
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "生成刷新令牌失败")
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
