package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+5511912345678", "https://wa.me/5511912345678"},
		{"+55 (11) 91234-5678", "https://wa.me/5511912345678"},
		{"", "https://wa.me/"},
		{"+55١١٩", "https://wa.me/55"},
		{"+55 11 ９１２３", "https://wa.me/5511"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WhatsAppLink(tt.in), tt.in)
	}
}

func TestDigitsOnly_ASCII(t *testing.T) {
	assert.Equal(t, "5511", DigitsOnly("+55 (11)"))
	assert.Equal(t, "", DigitsOnly("١٢٣۴۵"))
	assert.Equal(t, "55", DigitsOnly("+55١١٩"))
}

func TestFormatBrazilNumber(t *testing.T) {
	assert.Equal(t, "+5511912345678", FormatBrazilNumber(" +5511912345678 "))
	assert.Equal(t, "+5511912345678", FormatBrazilNumber("(11) 91234-5678"))
	assert.Equal(t, "+55", FormatBrazilNumber(""))
	assert.Equal(t, "+5511", FormatBrazilNumber("11 ١٢٣"))
}

func TestIsGroupInviteURL(t *testing.T) {
	assert.True(t, IsGroupInviteURL("https://chat.whatsapp.com/AbC123"))
	assert.False(t, IsGroupInviteURL("https://wa.me/5511912345678"))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidateEmail("ops@empresa.com.br"))
	assert.False(t, ValidateEmail("ops@empresa"))
	assert.Equal(t, "password", CheckPassword("12345"))
	assert.Equal(t, "", CheckPassword("123456"))
	assert.False(t, ValidatePin("123"))
	assert.True(t, ValidatePin("1234"))
	assert.True(t, ValidatePin("12345678"))
	assert.False(t, ValidatePin("123456789"))
}

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("4321", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "4321", hash)
	assert.True(t, CheckSecret(hash, "4321"))
	assert.False(t, CheckSecret(hash, "1234"))
}

func TestRandomString(t *testing.T) {
	a := RandomString(32)
	b := RandomString(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Len(t, EncryptTextSHA512(a), 128)
}
