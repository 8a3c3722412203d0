package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/questforge/tabletop-server/internal/service"
)

// SessionHandler 会话记录处理器
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler 创建会话记录处理器
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Create 向战役追加会话记录
func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.sessionService.Append(c.Request.Context(), userID, campaignID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// List 按会话编号倒序列出战役的会话记录
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListByCampaign(c.Request.Context(), userID, campaignID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}
