package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/questforge/tabletop-server/internal/logger"
	"github.com/questforge/tabletop-server/internal/middleware"
	"github.com/questforge/tabletop-server/internal/service"
)

// DiceHandler 掷骰处理器
type DiceHandler struct {
	diceService service.DiceService
}

// NewDiceHandler 创建掷骰处理器
func NewDiceHandler(diceService service.DiceService) *DiceHandler {
	return &DiceHandler{
		diceService: diceService,
	}
}

// Roll 按记法掷骰
func (h *DiceHandler) Roll(c *gin.Context) {
	var req service.RollDiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.diceService.Roll(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if middleware.IsAuthenticated(c) {
		username, _ := middleware.GetUsername(c)
		logger.Info("掷骰",
			zap.String("username", username),
			zap.String("dice", result.Dice),
			zap.Int("final_total", result.FinalTotal),
		)
	}

	c.JSON(http.StatusOK, result)
}
