package local_fs

import (
	"os"

	"github.com/pkg/errors"
)

func (p *LocalFS) Delete(fileKey string) error {
	err := os.Remove(p.rootedPath(fileKey))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "local_fs")
	}
	return nil
}
