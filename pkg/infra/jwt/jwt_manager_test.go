package jwt_test

import (
	"testing"

	"github.com/playdeck/tabletally/pkg/config"
	"github.com/playdeck/tabletally/pkg/infra/jwt"
	"github.com/stretchr/testify/assert"
)

func TestManager_CreateAndValidate(t *testing.T) {
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "secret"})

	token, err := manager.CreateToken("alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, manager.ValidateToken(token))

	claims, err := manager.DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	issuer := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "secret-a"})
	verifier := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "secret-b"})

	token, err := issuer.CreateToken("alice")
	assert.NoError(t, err)

	assert.ErrorIs(t, verifier.ValidateToken(token), jwt.ErrInvalidToken)
}

func TestManager_RejectsGarbage(t *testing.T) {
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "secret"})
	assert.ErrorIs(t, manager.ValidateToken("garbage"), jwt.ErrInvalidToken)
}
