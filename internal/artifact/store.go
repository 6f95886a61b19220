package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

func (s *implStore) Dir() string {
	return s.dir
}

// Write creates the output directory if needed and stores content under a
// fresh timestamped name.
func (s *implStore) Write(ctx context.Context, kind Kind, content string) (Artifact, error) {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return Artifact{}, fmt.Errorf("create output dir: %w", err)
	}

	created := s.now().UTC()
	stamp := FormatTimestamp(created)

	for seq := 0; seq <= maxSequence; seq++ {
		name := FileName(kind, stamp, seq)
		path := filepath.Join(s.dir, name)

		if err := s.create(path, []byte(content)); err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return Artifact{}, fmt.Errorf("write %s: %w", name, err)
		}

		return Artifact{
			Kind:      kind,
			Name:      name,
			Path:      path,
			CreatedAt: created,
			Content:   content,
		}, nil
	}

	return Artifact{}, fmt.Errorf("write %s: no free name at %s", kind, stamp)
}

func (s *implStore) WriteSibling(ctx context.Context, a Artifact, ext string, data []byte) (string, error) {
	name := strings.TrimSuffix(a.Name, filepath.Ext(a.Name)) + ext
	path := filepath.Join(s.dir, name)

	if err := s.create(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Latest picks the greatest .txt file name carrying the kind's prefix.
// Exported siblings such as .docx files are ignored.
func (s *implStore) Latest(ctx context.Context, kind Kind) (Artifact, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Artifact{}, fmt.Errorf("no %s files in %s: %w", kind, s.dir, ErrNotFound)
		}
		return Artifact{}, fmt.Errorf("list output dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), kind.Prefix()) || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		names = append(names, e.Name())
	}

	if len(names) == 0 {
		return Artifact{}, fmt.Errorf("no %s files in %s: %w", kind, s.dir, ErrNotFound)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	name := names[0]
	path := filepath.Join(s.dir, name)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read %s: %w", name, err)
	}

	a := Artifact{
		Kind:    kind,
		Name:    name,
		Path:    path,
		Content: string(data),
	}
	if _, created, err := ParseName(name); err == nil {
		a.CreatedAt = created
	}
	return a, nil
}

// create writes data to a new file, failing with fs.ErrExist if path is taken.
func (s *implStore) create(path string, data []byte) error {
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
