package local_fs

import (
	"github.com/haierkeys/second-brain-service/pkg/fileurl"
)

type Config struct {
	SavePath      string `yaml:"save-path"`
	CustomPath    string `yaml:"custom-path"`
	PublicBaseURL string `yaml:"public-base-url"`
}

type LocalFS struct {
	Config *Config
}

// NewClient 创建本地存储实例
func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		conf.SavePath = "storage"
	}
	if err := fileurl.CreatePath(fileurl.PathSuffixCheckAdd(conf.SavePath, "/"), 0755); err != nil {
		return nil, err
	}
	return &LocalFS{Config: conf}, nil
}

// rootedPath maps an object key to its on-disk location.
func (p *LocalFS) rootedPath(fileKey string) string {
	return fileurl.PathSuffixCheckAdd(p.Config.SavePath, "/") + fileKey
}
