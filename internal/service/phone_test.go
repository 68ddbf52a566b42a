package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsApp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"leading zero replaced by prefix", "08031234567", "2348031234567"},
		{"already prefixed passes through", "2348031234567", "2348031234567"},
		{"bare local number gets prefix", "8031234567", "2348031234567"},
		{"formatting characters stripped", "+234 803-123-4567", "2348031234567"},
		{"spaced local number", "0803 123 4567", "2348031234567"},
		{"non-digits only collapses to empty", "call me", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWhatsApp(tt.in))
		})
	}
}

func TestNormalizeWhatsApp_DigitsOnly(t *testing.T) {
	for _, in := range []string{"08031234567", "+234 (0) 803 123 4567", "abc123"} {
		out := NormalizeWhatsApp(in)
		for _, r := range out {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in %q", r, out)
		}
	}
}
