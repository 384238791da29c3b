package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck_Roundtrip(t *testing.T) {
	t.Parallel()

	for _, password := range []string{"secret123", "", "пароль", "p@$$w0rd with spaces"} {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		assert.True(t, CheckPassword(password, hash), "password %q", password)
	}
}

func TestHashPassword_NonDeterministic(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Случайная соль: два хеша одного пароля не совпадают
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret123", first))
	assert.True(t, CheckPassword("secret123", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.False(t, CheckPassword("secret124", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	// Битый хеш — это отказ в аутентификации, а не паника
	assert.False(t, CheckPassword("secret123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret123", ""))
}
