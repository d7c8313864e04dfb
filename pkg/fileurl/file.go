// Package fileurl provides small path and file helpers shared by the
// storage drivers and the bootstrap code.
package fileurl

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// GetExePath gets the directory of the running executable
// GetExePath 获取程序执行目录
func GetExePath() string {
	exe, err := os.Executable()
	if err != nil {
		dir, _ := os.Getwd()
		return dir
	}
	return filepath.Dir(exe)
}

// IsExist determines if the given path exists
// IsExist 判断所给路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the directory for dst if it does not exist.
// dst may be a file path; only the directory part is created.
// CreatePath 创建目录
func CreatePath(dst string, perm os.FileMode) error {
	dir := dst
	if path.Ext(dst) != "" {
		dir = filepath.Dir(dst)
	}
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}

// GetFileExt gets file extension
// GetFileExt 获取文件后缀
func GetFileExt(name string) string {
	return path.Ext(name)
}

// PathSuffixCheckAdd appends suffix to p unless already present or p is empty.
// PathSuffixCheckAdd 检查路径后缀，不存在则追加
func PathSuffixCheckAdd(p string, suffix string) string {
	if p == "" {
		return p
	}
	if !strings.HasSuffix(p, suffix) {
		p = p + suffix
	}
	return p
}

// PathPrefixCheckTrim removes prefix from p if present.
// PathPrefixCheckTrim 检查路径前缀，存在则去除
func PathPrefixCheckTrim(p string, prefix string) string {
	return strings.TrimPrefix(p, prefix)
}
