package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Criteria
	}{
		{
			name:     "empty",
			password: "",
			want:     Criteria{},
		},
		{
			name:     "lowercase only",
			password: "abcdefgh",
			want:     Criteria{Length: true, Lower: true, Score: 2},
		},
		{
			name:     "missing special",
			password: "Abcdef12",
			want:     Criteria{Length: true, Upper: true, Lower: true, Number: true, Score: 4},
		},
		{
			name:     "all criteria",
			password: "Admin123!",
			want:     Criteria{Length: true, Upper: true, Lower: true, Number: true, Special: true, Score: MaxScore},
		},
		{
			name:     "strong but short",
			password: "Ab1!",
			want:     Criteria{Upper: true, Lower: true, Number: true, Special: true, Score: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.password))
		})
	}
}

func TestIsStrong(t *testing.T) {
	assert.True(t, IsStrong("Admin123!"))
	assert.True(t, IsStrong("Str0ng#Pass"))

	assert.False(t, IsStrong("admin123!"))
	assert.False(t, IsStrong("ADMIN123!"))
	assert.False(t, IsStrong("Adminabc!"))
	assert.False(t, IsStrong("Admin1234"))
	assert.False(t, IsStrong("Ab1!"))
}
