package global

import (
	"github.com/haierkeys/second-brain-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT    string
	Name    string = "Second Brain Service"
	Version string = "dev"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
