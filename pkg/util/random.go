package util

import (
	"crypto/rand"
)

// shareHashAlphabet is the URL-safe alphabet used for share hashes.
// 64 characters, so a random byte masked to 6 bits maps without modulo bias.
const shareHashAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// ShareHashLength is the default share hash length (nanoid-compatible).
const ShareHashLength = 21

// GenerateShareHash mints an unguessable URL-safe token from crypto/rand.
// GenerateShareHash 生成不可猜测的 URL 安全分享哈希
func GenerateShareHash(length int) (string, error) {
	if length <= 0 {
		length = ShareHashLength
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = shareHashAlphabet[b[i]&63]
	}
	return string(b), nil
}
