package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJWTManager_GenerateAndValidate 测试生成和验证访问令牌
func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(42, "gamemaster", "gm@example.com", "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "gamemaster", claims.Username)
	assert.Equal(t, "access", claims.TokenType)
}

// TestJWTManager_ExpiredToken 过期令牌验证失败
func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(1, "user", "u@example.com", "s")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

// TestJWTManager_WrongSecret 密钥不匹配验证失败
func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(1, "user", "u@example.com", "s")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

// TestJWTManager_RefreshFlow 刷新令牌换取新的访问令牌
func TestJWTManager_RefreshFlow(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	refresh, err := manager.GenerateRefreshToken(7, "session-7")
	require.NoError(t, err)

	access, err := manager.RefreshAccessToken(refresh, "player", "p@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "access", claims.TokenType)

	// 访问令牌不能当刷新令牌用
	_, err = manager.RefreshAccessToken(access, "player", "p@example.com")
	assert.Error(t, err)
}
