package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/questforge/tabletop-server/internal/middleware"
	"github.com/questforge/tabletop-server/internal/repository"
	"github.com/questforge/tabletop-server/internal/service"
)

// CharacterHandler 角色处理器
type CharacterHandler struct {
	characterService service.CharacterService
}

// NewCharacterHandler 创建角色处理器
func NewCharacterHandler(characterService service.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
	}
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_PARAM",
			Message: "非法的ID参数",
		})
		return 0, false
	}
	return uint(id), true
}

// parsePagination 从查询参数读取可选分页
// 两个参数都缺省时返回nil，列表走全量
func parsePagination(c *gin.Context) *repository.Pagination {
	pageStr := c.Query("page")
	sizeStr := c.Query("page_size")
	if pageStr == "" && sizeStr == "" {
		return nil
	}
	page, _ := strconv.Atoi(pageStr)
	size, _ := strconv.Atoi(sizeStr)
	return repository.NewPagination(page, size)
}

// currentUserID 取当前认证用户的ID
func currentUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    "NO_TOKEN",
			Message: "缺少认证令牌",
		})
	}
	return userID, ok
}

// Create 创建角色
func (h *CharacterHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	character, err := h.characterService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, character)
}

// Get 查询单个角色
func (h *CharacterHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	characterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	character, err := h.characterService.Get(c.Request.Context(), userID, characterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, character)
}

// List 列出当前用户的角色
func (h *CharacterHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	characters, err := h.characterService.List(c.Request.Context(), userID, parsePagination(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characters)
}

// Update 部分更新角色
func (h *CharacterHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	characterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	character, err := h.characterService.Update(c.Request.Context(), userID, characterID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, character)
}
