package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingCodeFormat(t *testing.T) {
	code := GenerateBookingCode()
	require.True(t, strings.HasPrefix(code, "GC-"))
	suffix := strings.TrimPrefix(code, "GC-")
	assert.Len(t, suffix, 8)
	for _, r := range suffix {
		assert.Contains(t, codeAlphabet, string(r))
	}
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := GenerateOrderNumber()
	require.True(t, strings.HasPrefix(number, "ORD-"))
	assert.Len(t, strings.TrimPrefix(number, "ORD-"), 10)
}

func TestGenerateSlugSanitizesNames(t *testing.T) {
	slug := GenerateSlug("Maria José", "O'Brien-Kowalska")
	parts := strings.Split(slug, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "mariajos", parts[0])
	assert.Equal(t, "obrienkowalska", parts[1])
	assert.Len(t, parts[2], 6)
}

func TestGenerateSlugEmptyNameFallback(t *testing.T) {
	slug := GenerateSlug("", "!!!")
	parts := strings.Split(slug, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "memorial", parts[0])
	assert.Equal(t, "memorial", parts[1])
}

func TestGenerateSlugsDiffer(t *testing.T) {
	// The random suffix keeps two profiles for the same person distinct.
	a := GenerateSlug("Jan", "Nowak")
	b := GenerateSlug("Jan", "Nowak")
	assert.NotEqual(t, a, b)
}

func TestGenerateOtpCode(t *testing.T) {
	otp, err := GenerateOtpCode(6)
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}

	_, err = GenerateOtpCode(0)
	assert.Error(t, err)
}
