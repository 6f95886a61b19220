package artifact

import (
	"time"

	"github.com/spf13/afero"
)

type implStore struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// New creates a Store rooted at dir on the given filesystem.
func New(fs afero.Fs, dir string) Store {
	return &implStore{
		fs:  fs,
		dir: dir,
		now: time.Now,
	}
}

// NewOS creates a Store on the host filesystem.
func NewOS(dir string) Store {
	return New(afero.NewOsFs(), dir)
}
