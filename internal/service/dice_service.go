package service

import (
	"context"

	"github.com/questforge/tabletop-server/internal/dice"
)

// diceService 掷骰服务实现
// 纯计算，不落库；掷骰结果要进会话记录时由调用方写入 dice_rolls。
type diceService struct{}

// NewDiceService 创建掷骰服务
func NewDiceService() DiceService {
	return &diceService{}
}

// Roll 按记法掷骰
func (s *diceService) Roll(_ context.Context, req *RollDiceRequest) (*dice.Result, error) {
	return dice.Roll(req.Notation, req.Modifier, req.RollType)
}
