package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcwatch/mcwatch/internal/domain"
)

func TestParsePlayerUUID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    domain.PlayerUUID
		expectError bool
	}{
		{
			name:     "bare 32 hex form",
			input:    "3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e",
			expected: "3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e",
		},
		{
			name:     "dashed form",
			input:    "3b0c9d4e-8f1a-4b6c-9d2e-5f8a1b4c7d0e",
			expected: "3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e",
		},
		{
			name:     "uppercase is canonicalized to lowercase",
			input:    "3B0C9D4E-8F1A-4B6C-9D2E-5F8A1B4C7D0E",
			expected: "3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "too short",
			input:       "3b0c9d4e",
			expectError: true,
		},
		{
			name:        "non-hex characters",
			input:       "zz0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePlayerUUID(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
