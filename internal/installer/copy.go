package installer

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tacogips/lox-syntax-install/internal/debug"
)

// CopyStats summarizes a completed copy.
type CopyStats struct {
	Files int
	Dirs  int
	Bytes int64
}

// CopyTree recursively copies the directory src to dst, preserving the tree
// layout, file contents and permission bits. Symlinks inside src are followed.
// A failed copy is not rolled back.
func CopyTree(ctx context.Context, fsys afero.Fs, src, dst string) (CopyStats, error) {
	var stats CopyStats

	info, err := fsys.Stat(src)
	if err != nil {
		return stats, newInstallError(CopyFailed, "failed to read source directory", src, err)
	}
	if !info.IsDir() {
		return stats, newInstallError(CopyFailed, "source is not a directory", src, nil)
	}

	err = copyDir(ctx, fsys, src, dst, info.Mode().Perm(), &stats)
	return stats, err
}

func copyDir(ctx context.Context, fsys afero.Fs, src, dst string, perm os.FileMode, stats *CopyStats) error {
	if err := ctx.Err(); err != nil {
		return newInstallError(CopyFailed, "copy interrupted", dst, err)
	}

	debug.Debug("[installer] Creating directory: %s", dst)
	if err := fsys.MkdirAll(dst, perm|0700); err != nil {
		return newInstallError(CopyFailed, "failed to create directory", dst, err)
	}
	stats.Dirs++

	entries, err := afero.ReadDir(fsys, src)
	if err != nil {
		return newInstallError(CopyFailed, "failed to read directory", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info := entry
		if info.Mode()&os.ModeSymlink != 0 {
			info, err = fsys.Stat(srcPath)
			if err != nil {
				return newInstallError(CopyFailed, "failed to follow symlink", srcPath, err)
			}
		}

		switch {
		case info.IsDir():
			if err := copyDir(ctx, fsys, srcPath, dstPath, info.Mode().Perm(), stats); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := ctx.Err(); err != nil {
				return newInstallError(CopyFailed, "copy interrupted", dstPath, err)
			}
			n, err := copyFile(fsys, srcPath, dstPath, info.Mode().Perm())
			if err != nil {
				return err
			}
			stats.Files++
			stats.Bytes += n
		default:
			return newInstallError(CopyFailed, "unsupported file type", srcPath, nil)
		}
	}

	return nil
}

// copyFile copies one regular file. The owner always keeps read/write access
// so a later overwrite can remove the copy.
func copyFile(fsys afero.Fs, src, dst string, mode os.FileMode) (int64, error) {
	debug.Debug("[installer] Copying file: %s -> %s", src, dst)

	in, err := fsys.Open(src)
	if err != nil {
		return 0, newInstallError(CopyFailed, "failed to open source file", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode|0600)
	if err != nil {
		return 0, newInstallError(CopyFailed, "failed to create destination file", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, newInstallError(CopyFailed, "failed to copy file content", dst, err)
	}
	if err := out.Close(); err != nil {
		return n, newInstallError(CopyFailed, "failed to close file", dst, err)
	}

	return n, nil
}

// ListFiles returns the slash-separated paths of all non-directory entries
// under root, relative to root, in lexical order.
func ListFiles(fsys afero.Fs, root string) ([]string, error) {
	var files []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, newInstallError(CopyFailed, "failed to list source files", root, err)
	}
	return files, nil
}
