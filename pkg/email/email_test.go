package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"rudo@example.com", true},
		{"first.last@shop.co.zw", true},
		{"", false},
		{"not-an-email", false},
		{"a@localhost", false},
		{"a@example.", false},
		{"Rudo <rudo@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "rudo@example.com", Normalize("  Rudo@Example.COM "))
}
