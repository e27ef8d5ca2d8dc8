package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAccountSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in       string
		expected string
	}{
		{"$100,000", "100000"},
		{"100000", "100000"},
		{"100 000", "100000"},
		{"€50,000", "50000"},
		{"£25k", "25K"},
		{"10k Account", "10KACCOUNT"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeAccountSize(tc.in))
		})
	}
}

func TestSanitizeAccountSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in       string
		expected string
	}{
		{"$100,000", "-100-000"},
		{"100000", "100000"},
		{"10K", "10k"},
		{"50k FTMO", "50k-ftmo"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeAccountSize(tc.in))
		})
	}
}
