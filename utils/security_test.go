package utils_test

import (
	"testing"

	"gatehouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("Secret#123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "Secret#123", hash)
	assert.True(t, utils.CheckPasswordHash("Secret#123", hash))
	assert.False(t, utils.CheckPasswordHash("Secret#124", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("Secret#123", "not-a-bcrypt-hash"))
	assert.False(t, utils.CheckPasswordHash("Secret#123", ""))
}
