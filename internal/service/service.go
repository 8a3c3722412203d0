package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/questforge/tabletop-server/internal/repository"
)

// Config 服务层配置
type Config struct {
	JWTSecret     string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// Services 服务聚合
// 所有领域服务的入口，持有共享的仓储层
type Services struct {
	Auth      AuthService
	Character CharacterService
	Campaign  CampaignService
	Session   SessionService
	Dice      DiceService
}

// NewServices 创建服务聚合
func NewServices(db *gorm.DB, cfg *Config) *Services {
	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	sessionRepo := repository.NewGameSessionRepository(db)

	return &Services{
		Auth:      NewAuthService(userRepo, cfg),
		Character: NewCharacterService(characterRepo, userRepo),
		Campaign:  NewCampaignService(campaignRepo, characterRepo, userRepo),
		Session:   NewSessionService(sessionRepo, campaignRepo),
		Dice:      NewDiceService(),
	}
}
