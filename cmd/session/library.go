package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrEmptyLibrary     = errors.New("no playable files found")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrPlayerNotFound   = errors.New("player not found")
)

// mediaExtensions is the set of file extensions considered playable.
var mediaExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".wav":  true,
	".ogg":  true,
	".m4a":  true,
	".aac":  true,
	".wma":  true,
	".opus": true,
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".webm": true,
}

// IsMediaFile reports whether name has a playable media extension.
func IsMediaFile(name string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(name))]
}

// Library is the order-fixed set of playable file paths for one session.
// It is snapshotted once; files added or removed on disk afterwards are
// not reflected.
type Library struct {
	Dir   string   // absolute base directory
	Files []string // absolute paths
}

func (l Library) Len() int {
	return len(l.Files)
}

// Enumerate lists playable files under dir and returns them as a Library.
//
// With recursive=false it takes the direct children of dir, skipping hidden
// and non-media files, sorted alphabetically. With recursive=true it walks
// the whole tree and keeps files whose base name contains filter
// (case-insensitive). Returns ErrEmptyLibrary when nothing matches.
func Enumerate(dir string, recursive bool, filter string) (Library, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Library{}, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	info, err := os.Stat(absDir)
	if os.IsNotExist(err) {
		return Library{}, fmt.Errorf("directory does not exist: %s", absDir)
	}
	if err != nil {
		return Library{}, fmt.Errorf("failed to stat directory %s: %w", absDir, err)
	}
	if !info.IsDir() {
		return Library{}, fmt.Errorf("not a directory: %s", absDir)
	}

	var files []string
	if recursive {
		files, err = walkFiltered(absDir, filter)
		if err != nil {
			return Library{}, err
		}
	} else {
		entries, err := os.ReadDir(absDir)
		if err != nil {
			return Library{}, fmt.Errorf("failed to read directory %s: %w", absDir, err)
		}
		playable := lo.Filter(entries, func(e fs.DirEntry, _ int) bool {
			return !e.IsDir() && !strings.HasPrefix(e.Name(), ".") && IsMediaFile(e.Name())
		})
		files = lo.Map(playable, func(e fs.DirEntry, _ int) string {
			return filepath.Join(absDir, e.Name())
		})
		sort.Strings(files)
	}

	if len(files) == 0 {
		return Library{}, fmt.Errorf("%w in %s", ErrEmptyLibrary, absDir)
	}

	return Library{Dir: absDir, Files: files}, nil
}

// walkFiltered walks dir recursively and returns media files whose base name
// contains filter, case-insensitively. Unreadable paths are skipped.
func walkFiltered(dir string, filter string) ([]string, error) {
	needle := strings.ToLower(filter)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip paths that can't be accessed
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || !IsMediaFile(name) {
			return nil
		}
		if strings.Contains(strings.ToLower(name), needle) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during file system walk: %w", err)
	}

	return files, nil
}
