package utils

import (
	"errors"
	"fmt"
	"math/rand"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateBookingCode returns a human-readable code like GC-7KQ2M9XA used to
// derive the parent-group id and the per-year booking ids.
func GenerateBookingCode() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return "GC-" + string(b)
}

// GenerateOrderNumber returns a code like ORD-4F8Z1...
func GenerateOrderNumber() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return "ORD-" + string(b)
}

// GenerateSlug derives a public memorial slug from the person's names plus a
// random suffix so two profiles for the same name never collide.
func GenerateSlug(firstName, lastName string) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return fmt.Sprintf("%s-%s-%s", sanitizeSlugPart(firstName), sanitizeSlugPart(lastName), string(b))
}

func sanitizeSlugPart(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	if len(out) == 0 {
		return "memorial"
	}
	return string(out)
}

func GenerateOtpCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid OTP length")
	}
	const digits = "0123456789"
	otp := make([]byte, length)
	for i := range otp {
		otp[i] = digits[rand.Intn(len(digits))]
	}
	return string(otp), nil
}
