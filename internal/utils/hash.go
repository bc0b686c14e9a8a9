package utils

import (
	"crypto/sha256"
	"fmt"
)

func HashSha256(content string) (hash string) {
	h := sha256.Sum256([]byte(content))
	hash = fmt.Sprintf("%x", h[:])
	return
}
