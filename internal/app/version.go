package app

// Name 应用名称
const Name = "second-brain-service"

// 以下变量在构建时通过 -ldflags 注入
var (
	Version   = "dev"
	GitTag    = ""
	BuildTime = ""
)

// VersionInfo 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
}
