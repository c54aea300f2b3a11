// Package layout holds the build-directory layout shared by the icon
// tools: where the iconset lives, where the one-time backup goes, and
// where themed variants are written. Every tool receives an explicit
// Dirs value instead of hardcoding paths, so the whole pipeline can run
// against a temporary directory in tests.
package layout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	IconsetDirName = "icon.iconset"
	BackupDirName  = "icon.iconset.original"
	ThemedDirName  = "themed-icons"
	DirPerm        = 0755
	FilePerm       = 0644
)

// Dirs is the resolved directory layout under a single build directory.
type Dirs struct {
	Base    string // build directory root
	Iconset string // base iconset consumed and produced by the tools
	Backup  string // pristine copy of the iconset, made once
	Themed  string // per-theme iconsets and .icns output
}

// ForBase resolves the standard layout under base.
func ForBase(base string) Dirs {
	return Dirs{
		Base:    base,
		Iconset: filepath.Join(base, IconsetDirName),
		Backup:  filepath.Join(base, BackupDirName),
		Themed:  filepath.Join(base, ThemedDirName),
	}
}

// EnsureDir creates dir (and parents) if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// BackupOnce copies the regular files in src to dst unless dst already
// exists. It reports whether a copy was made, so repeated runs of a
// destructive tool keep exactly one pristine copy.
func BackupOnce(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
			return false, err
		}
	}
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
