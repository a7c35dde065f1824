package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone_AcceptedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading zero", "0712345678", "254712345678"},
		{"already prefixed", "254712345678", "254712345678"},
		{"bare subscriber number", "712345678", "254712345678"},
		{"with plus prefix", "+254712345678", "254712345678"},
		{"with spaces and dashes", "0712 345-678", "254712345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_RejectedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "07123"},
		{"too long", "07123456789012"},
		{"wrong country prefix", "255712345678"},
		{"nine digits wrong prefix", "112345678"},
		{"letters only", "not-a-number"},
		{"eleven digits", "25471234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePhone(tt.input)
			assert.Error(t, err)
		})
	}
}
