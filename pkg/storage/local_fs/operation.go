package local_fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haierkeys/second-brain-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// SendFile 保存文件到本地存储
func (p *LocalFS) SendFile(fileKey string, file io.Reader, contentType string) (string, error) {

	fileKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + fileKey
	dst := p.rootedPath(fileKey)

	if err := fileurl.CreatePath(dst, 0755); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	return fileKey, nil
}

// ListKeys 列出指定前缀下的文件，前缀与 SendFile 一样带上 CustomPath
func (p *LocalFS) ListKeys(prefix string) ([]string, error) {

	prefix = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + prefix
	root := fileurl.PathSuffixCheckAdd(p.Config.SavePath, "/")
	var keys []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		key := filepath.ToSlash(strings.TrimPrefix(path, root))
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "local_fs")
	}
	return keys, nil
}

// ModTime 返回对象的最后修改时间
func (p *LocalFS) ModTime(fileKey string) (time.Time, error) {
	info, err := os.Stat(p.rootedPath(fileKey))
	if err != nil {
		return time.Time{}, errors.Wrap(err, "local_fs")
	}
	return info.ModTime(), nil
}

// PublicURL returns the URL the HTTP file server exposes fileKey on.
func (p *LocalFS) PublicURL(fileKey string) string {
	return fileurl.PathSuffixCheckAdd(p.Config.PublicBaseURL, "/") + fileKey
}

// KeyFromURL inverts PublicURL. Returns false when url is not served
// from this store.
func (p *LocalFS) KeyFromURL(url string) (string, bool) {
	base := fileurl.PathSuffixCheckAdd(p.Config.PublicBaseURL, "/")
	if base == "" || !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" {
		return "", false
	}
	return key, true
}
