package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
	"regexp"
	"strings"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var randSource = mathrand.NewSource(time.Now().UnixNano())
var randGenerator = mathrand.New(randSource)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[randGenerator.Intn(len(charset))]
	}
	return string(b)
}

// Slugify turns "Anna & Ben 2025" into "anna-ben-2025".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateNumericCode returns a zero-padded numeric code, crypto-random
// because it is used for login passcodes.
func GenerateNumericCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
