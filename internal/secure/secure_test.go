package secure

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := HashSecret("1234")
	assert.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, VerifySecret("1234", hash))
	assert.False(t, VerifySecret("4321", hash))
	assert.False(t, VerifySecret("1234", "not-a-bcrypt-hash"))
}

func TestHashSecretSalted(t *testing.T) {
	first, err := HashSecret("secret123")
	assert.NoError(t, err)
	second, err := HashSecret("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), otp)
	}
}
