// Package installer copies the bundled syntax extension into an editor
// extensions directory. It never touches the console directly: prompting is
// injected through Prompter and Confirmer, and every failure is returned as an
// *InstallError for the caller to report.
package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/tacogips/lox-syntax-install/internal/config"
	"github.com/tacogips/lox-syntax-install/internal/debug"
)

// OverwritePolicy decides what happens when the destination already exists.
type OverwritePolicy int

const (
	// OverwriteAsk defers to Options.Confirm.
	OverwriteAsk OverwritePolicy = iota
	// OverwriteAlways replaces the existing installation.
	OverwriteAlways
	// OverwriteNever leaves the existing installation untouched.
	OverwriteNever
)

// Status describes how an Install call ended.
type Status int

const (
	// StatusInstalled means a fresh installation was copied.
	StatusInstalled Status = iota
	// StatusReplaced means an existing installation was removed and copied again.
	StatusReplaced
	// StatusDeclined means an existing installation was left untouched.
	StatusDeclined
	// StatusDryRun means nothing was written.
	StatusDryRun
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusReplaced:
		return "replaced"
	case StatusDeclined:
		return "declined"
	case StatusDryRun:
		return "dry run"
	default:
		return "unknown"
	}
}

// Options contains everything needed for one installation.
type Options struct {
	// Target is the selected platform and its extensions-directory template.
	Target Target
	// Home replaces the "~" placeholder in Target.Template.
	Home string
	// SourceDir is the bundled asset directory. Relative paths resolve
	// against the working directory.
	SourceDir string
	// ExtensionName is the directory created inside the extensions directory.
	ExtensionName string
	// Overwrite decides what to do with an existing installation.
	Overwrite OverwritePolicy
	// Confirm is consulted when Overwrite is OverwriteAsk.
	Confirm Confirmer
	// DryRun resolves and checks everything but writes nothing.
	DryRun bool
}

// Result contains the outcome of an installation.
type Result struct {
	// Status is how the run ended.
	Status Status
	// Source is the absolute source asset directory.
	Source string
	// ExtensionsDir is the resolved editor extensions directory.
	ExtensionsDir string
	// Destination is ExtensionsDir joined with the extension name.
	Destination string
	// Existed reports whether Destination existed before the run.
	Existed bool
	// FilesCopied is the number of regular files written.
	FilesCopied int
	// DirsCreated is the number of directories written, including Destination.
	DirsCreated int
	// BytesCopied is the total size of the written files.
	BytesCopied int64
	// Files lists the source files, relative to Source (dry run only).
	Files []string
}

// Installer performs installations against a filesystem.
type Installer struct {
	fs afero.Fs
}

// New creates an Installer. A nil fs uses the operating system filesystem.
func New(fs afero.Fs) *Installer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Installer{fs: fs}
}

// Install checks preconditions, resolves any conflict with an existing
// installation and copies the source tree into place.
func (i *Installer) Install(ctx context.Context, opts Options) (*Result, error) {
	log := debug.Logger("installer")
	log.Debug().
		Str("platform", opts.Target.Platform.String()).
		Str("template", opts.Target.Template).
		Str("source", opts.SourceDir).
		Str("extension", opts.ExtensionName).
		Bool("dry_run", opts.DryRun).
		Msg("install start")

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	extDir, err := ResolveTemplate(opts.Target.Template, opts.Home)
	if err != nil {
		return nil, err
	}
	if err := i.checkDir(extDir, "extensions directory"); err != nil {
		return nil, err
	}

	src, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, newInstallError(PreconditionFailed, "failed to resolve source directory", opts.SourceDir, err)
	}
	if err := i.checkDir(src, "source directory"); err != nil {
		return nil, err
	}

	dest := filepath.Join(extDir, opts.ExtensionName)
	if isWithin(src, dest) || isWithin(dest, src) {
		return nil, newInstallError(PreconditionFailed, "destination overlaps the source directory", dest, nil)
	}
	log.Debug().Str("source", src).Str("destination", dest).Msg("paths resolved")

	existed, err := i.exists(dest)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:        src,
		ExtensionsDir: extDir,
		Destination:   dest,
		Existed:       existed,
	}

	if opts.DryRun {
		files, err := ListFiles(i.fs, src)
		if err != nil {
			return nil, err
		}
		result.Status = StatusDryRun
		result.Files = files
		log.Debug().Int("files", len(files)).Msg("dry run complete")
		return result, nil
	}

	if existed {
		replace, err := decideOverwrite(opts, dest)
		if err != nil {
			return nil, err
		}
		if !replace {
			log.Debug().Str("destination", dest).Msg("overwrite declined")
			result.Status = StatusDeclined
			return result, nil
		}

		log.Debug().Str("destination", dest).Msg("removing existing installation")
		if err := i.fs.RemoveAll(dest); err != nil {
			return nil, newInstallError(RemoveFailed, "failed to remove existing installation", dest, err)
		}
	}

	stats, err := CopyTree(ctx, i.fs, src, dest)
	result.FilesCopied = stats.Files
	result.DirsCreated = stats.Dirs
	result.BytesCopied = stats.Bytes
	if err != nil {
		return result, err
	}

	result.Status = StatusInstalled
	if existed {
		result.Status = StatusReplaced
	}
	log.Debug().
		Int("files", stats.Files).
		Int("dirs", stats.Dirs).
		Int64("bytes", stats.Bytes).
		Str("status", result.Status.String()).
		Msg("install complete")
	return result, nil
}

func validateOptions(opts Options) error {
	if err := config.ValidateExtensionName(opts.ExtensionName); err != nil {
		return newInstallError(InvalidOptions, "invalid extension name", "", err)
	}
	if strings.TrimSpace(opts.SourceDir) == "" {
		return newInstallError(InvalidOptions, "source directory is required", "", nil)
	}
	if opts.Overwrite == OverwriteAsk && opts.Confirm == nil {
		return newInstallError(InvalidOptions, "overwrite policy ask requires a confirmer", "", nil)
	}
	return nil
}

func decideOverwrite(opts Options, dest string) (bool, error) {
	switch opts.Overwrite {
	case OverwriteAlways:
		return true, nil
	case OverwriteNever:
		return false, nil
	}

	ok, err := opts.Confirm(dest)
	if err != nil {
		var ie *InstallError
		if errors.As(err, &ie) {
			return false, err
		}
		return false, newInstallError(PromptFailed, "failed to confirm overwrite", dest, err)
	}
	return ok, nil
}

// checkDir verifies that path exists and is a directory.
func (i *Installer) checkDir(path, what string) error {
	info, err := i.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newInstallError(PreconditionFailed, what+" does not exist", path, nil)
		}
		return newInstallError(PreconditionFailed, "failed to inspect "+what, path, err)
	}
	if !info.IsDir() {
		return newInstallError(PreconditionFailed, what+" is not a directory", path, nil)
	}
	return nil
}

func (i *Installer) exists(path string) (bool, error) {
	_, err := i.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, newInstallError(PreconditionFailed, "failed to inspect destination", path, err)
}

// isWithin reports whether child is parent or lies below it.
func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
