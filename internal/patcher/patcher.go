package patcher

import (
	"fmt"
	"path/filepath"

	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/errors"
	"github.com/dockgen-io/dockgen/internal/logging"
	"github.com/dockgen-io/dockgen/internal/system"
)

// BackupSuffix is appended to the original filename when a backup copy is made.
const BackupSuffix = ".backup"

// Result reports what Apply did to a project file.
type Result struct {
	File       string // Path of the target file
	Patched    bool   // True if the file was modified this run
	BackupPath string // Path of the backup copy (empty if no backup was made)
	Skipped    bool   // True if the target file was absent
}

// Apply ensures the project file for the given patch style contains a
// server-start directive. The original file is copied to a .backup path
// before the first modification; an already-compliant file is left
// untouched and no backup is created.
//
// A missing target file is not an error: patching is skipped for that
// style (console projects have no Program.cs to patch, RC2 projects have
// no project.json commands block).
func Apply(fs system.FileSystem, dir string, style config.PatchStyle) (*Result, error) {
	var target string
	var patch func([]byte) ([]byte, bool, error)

	switch style {
	case config.StyleManifest:
		target = filepath.Join(dir, ManifestFileName)
		patch = PatchProjectManifest
	case config.StyleEntryPoint:
		target = filepath.Join(dir, EntryPointFileName)
		patch = func(content []byte) ([]byte, bool, error) {
			patched, changed := PatchEntryPoint(content)
			return patched, changed, nil
		}
	case config.StyleNone:
		return &Result{Skipped: true}, nil
	default:
		return nil, fmt.Errorf("unknown patch style: %s", style)
	}

	if !fs.Exists(target) {
		logging.Debug("patch target absent, skipping", "file", target)
		return &Result{File: target, Skipped: true}, nil
	}

	content, err := fs.ReadFile(target)
	if err != nil {
		return nil, errors.PatchFailed(target, err)
	}

	patched, changed, err := patch(content)
	if err != nil {
		return nil, errors.PatchFailed(target, err)
	}

	result := &Result{File: target}
	if !changed {
		logging.Debug("file already container-ready", "file", target)
		return result, nil
	}

	backup := target + BackupSuffix
	if !fs.Exists(backup) {
		if err := fs.CopyFile(target, backup); err != nil {
			return nil, errors.WriteError(backup, err)
		}
		result.BackupPath = backup
	}

	// Write-then-rename so a crash cannot leave a half-written project file.
	tmp := filepath.Join(dir, "."+filepath.Base(target)+".tmp")
	if err := fs.WriteFile(tmp, patched, 0644); err != nil {
		return nil, errors.WriteError(tmp, err)
	}
	if err := fs.Rename(tmp, target); err != nil {
		return nil, errors.WriteError(target, err)
	}

	result.Patched = true
	logging.Debug("patched project file", "file", target, "backup", result.BackupPath)
	return result, nil
}
