package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "5511987654321", CleanPhone("+55 (11) 98765-4321"))
	assert.Equal(t, "5599999999999", CleanPhone("5599999999999"))
	assert.Equal(t, "", CleanPhone("abc"))
}

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"5511987654321", true},
		{"+55 (11) 98765-4321", true},
		{"1234567890", true},      // 10 digits, lower bound
		{"123456789012345", true}, // 15 digits, upper bound
		{"123456789", false},      // 9 digits
		{"1234567890123456", false},
		{"", false},
		{"telefone", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNumber(tt.phone))
		})
	}
}

func TestBuildLink(t *testing.T) {
	link := BuildLink("+55 (11) 98765-4321", "Olá! Quero confirmar meu agendamento.")

	assert.Equal(t,
		"https://api.whatsapp.com/send?phone=5511987654321&text=Ol%C3%A1%21+Quero+confirmar+meu+agendamento.",
		link)
}
