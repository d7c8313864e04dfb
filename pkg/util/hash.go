package util

import (
	"crypto/md5"
	"encoding/hex"
)

// EncodeMD5 returns the hex MD5 digest of a string. Used to derive stable
// path segments from identity strings that are not filesystem/URL safe.
// EncodeMD5 对字符串进行 MD5 哈希
func EncodeMD5(value string) string {
	m := md5.New()
	m.Write([]byte(value))
	return hex.EncodeToString(m.Sum(nil))
}
