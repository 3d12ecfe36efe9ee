// Package cache tracks which posts have already been downloaded.
package cache

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
)

// DefaultFile is the cache location used by the CLI, resolved against the
// working directory.
const DefaultFile = "downloaded_posts.json"

// File persists downloaded post URLs as a JSON array on disk. The whole
// file is rewritten on every append; a missing file means an empty cache.
type File struct {
	path string
}

// New creates a cache backed by the file at path. The file is not created
// until the first URL is recorded.
func New(path string) *File {
	return &File{path: path}
}

// IsDownloaded reports whether url has been recorded in the cache.
func (f *File) IsDownloaded(url string) (bool, error) {
	urls, err := f.load()
	if err != nil {
		return false, err
	}
	return lo.Contains(urls, url), nil
}

// MarkDownloaded appends url to the cache and rewrites the file.
func (f *File) MarkDownloaded(url string) error {
	urls, err := f.load()
	if err != nil {
		return err
	}
	urls = append(urls, url)

	data, err := json.MarshalIndent(urls, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

func (f *File) load() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache: %w", err)
	}
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", f.path, err)
	}
	return urls, nil
}
