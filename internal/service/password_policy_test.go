package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStrengthPolicy(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Password123!", true},
		{"Aa1!aaaa", true},
		{"Пароль12#X", true},
		{"Aa1 aaaa", true},
		{"abc", false},
		{"Aa1!aaa", false},
		{"password123!", false},
		{"PASSWORD123!", false},
		{"Password!!!!", false},
		{"Password1234", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultStrengthPolicy(tt.password))
		})
	}
}
