package service

import (
	"context"

	"github.com/questforge/tabletop-server/internal/dice"
	"github.com/questforge/tabletop-server/internal/models"
	"github.com/questforge/tabletop-server/internal/repository"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

// CreateCharacterRequest 创建角色请求
// 指针字段缺省时走默认值推导，能力值和等级在服务层校验范围
type CreateCharacterRequest struct {
	Name             string                 `json:"name" binding:"required,max=100"`
	Race             *string                `json:"race"`
	CharacterClass   *string                `json:"character_class"`
	Level            *int                   `json:"level"`
	ExperiencePoints *int                   `json:"experience_points"`
	Strength         *int                   `json:"strength"`
	Dexterity        *int                   `json:"dexterity"`
	Constitution     *int                   `json:"constitution"`
	Intelligence     *int                   `json:"intelligence"`
	Wisdom           *int                   `json:"wisdom"`
	Charisma         *int                   `json:"charisma"`
	HitPoints        *int                   `json:"hit_points"`
	MaxHitPoints     *int                   `json:"max_hit_points"`
	ArmorClass       *int                   `json:"armor_class"`
	Inventory        map[string]interface{} `json:"inventory"`
	Equipment        map[string]interface{} `json:"equipment"`
	Backstory        *string                `json:"backstory"`
	Notes            *string                `json:"notes"`
}

// UpdateCharacterRequest 部分更新角色请求
// 三态字段：缺失的不动，显式null的清空（仅可空列），有值的覆盖
type UpdateCharacterRequest struct {
	Name             Field[string]                 `json:"name"`
	Race             Field[string]                 `json:"race"`
	CharacterClass   Field[string]                 `json:"character_class"`
	Level            Field[int]                    `json:"level"`
	ExperiencePoints Field[int]                    `json:"experience_points"`
	Strength         Field[int]                    `json:"strength"`
	Dexterity        Field[int]                    `json:"dexterity"`
	Constitution     Field[int]                    `json:"constitution"`
	Intelligence     Field[int]                    `json:"intelligence"`
	Wisdom           Field[int]                    `json:"wisdom"`
	Charisma         Field[int]                    `json:"charisma"`
	HitPoints        Field[int]                    `json:"hit_points"`
	MaxHitPoints     Field[int]                    `json:"max_hit_points"`
	ArmorClass       Field[int]                    `json:"armor_class"`
	Inventory        Field[map[string]interface{}] `json:"inventory"`
	Equipment        Field[map[string]interface{}] `json:"equipment"`
	Backstory        Field[string]                 `json:"backstory"`
	Notes            Field[string]                 `json:"notes"`
}

// CreateCampaignRequest 创建战役请求
type CreateCampaignRequest struct {
	CharacterID  uint                   `json:"character_id" binding:"required"`
	Title        string                 `json:"title" binding:"required,max=200"`
	Genre        string                 `json:"genre" binding:"required"`
	Description  *string                `json:"description"`
	CurrentScene *string                `json:"current_scene"`
	CampaignData map[string]interface{} `json:"campaign_data"`
}

// UpdateCampaignRequest 部分更新战役请求
// 题材在创建后不可更改，不在可更新字段之列
type UpdateCampaignRequest struct {
	Title        Field[string]                 `json:"title"`
	Status       Field[string]                 `json:"status"`
	Description  Field[string]                 `json:"description"`
	CurrentScene Field[string]                 `json:"current_scene"`
	CampaignData Field[map[string]interface{}] `json:"campaign_data"`
}

// CreateSessionRequest 追加会话记录请求
type CreateSessionRequest struct {
	SessionNumber int                    `json:"session_number" binding:"required,min=1"`
	Narrative     string                 `json:"narrative" binding:"required"`
	DiceRolls     []models.DiceRollEvent `json:"dice_rolls"`
}

// RollDiceRequest 掷骰请求
type RollDiceRequest struct {
	Notation string `json:"notation" binding:"required"`
	Modifier int    `json:"modifier"`
	RollType string `json:"roll_type"`
}

// AuthService 认证服务接口
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, req *RefreshRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// CharacterService 角色服务接口
type CharacterService interface {
	Create(ctx context.Context, userID uint, req *CreateCharacterRequest) (*models.Character, error)
	Get(ctx context.Context, userID, characterID uint) (*models.Character, error)
	List(ctx context.Context, userID uint, p *repository.Pagination) ([]*models.Character, error)
	Update(ctx context.Context, userID, characterID uint, req *UpdateCharacterRequest) (*models.Character, error)
}

// CampaignService 战役服务接口
type CampaignService interface {
	Create(ctx context.Context, userID uint, req *CreateCampaignRequest) (*models.Campaign, error)
	Get(ctx context.Context, userID, campaignID uint) (*models.Campaign, error)
	List(ctx context.Context, userID uint, p *repository.Pagination) ([]*models.Campaign, error)
	Update(ctx context.Context, userID, campaignID uint, req *UpdateCampaignRequest) (*models.Campaign, error)
}

// SessionService 会话记录服务接口
type SessionService interface {
	Append(ctx context.Context, userID, campaignID uint, req *CreateSessionRequest) (*models.GameSession, error)
	ListByCampaign(ctx context.Context, userID, campaignID uint) ([]*models.GameSession, error)
}

// DiceService 掷骰服务接口
type DiceService interface {
	Roll(ctx context.Context, req *RollDiceRequest) (*dice.Result, error)
}
