// Package workspace performs the per-file side effects around the
// formatter: read, reformat, compare and write back.
package workspace

import (
	"fmt"
	"os"

	"github.com/google/renameio"

	"github.com/fmtkit/retab/internal/formatter"
)

type Workspace struct {
	dryRun bool
}

// New returns a workspace. With dryRun set, files are never rewritten and
// Format only reports whether they would change.
func New(dryRun bool) *Workspace {
	return &Workspace{dryRun: dryRun}
}

// Format reads the file at path, reformats it according to its extension
// and, if and only if the result differs byte-for-byte from the original,
// writes it back atomically keeping the original file mode.
func (w *Workspace) Format(path string) (changed bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat file: %w", err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read file: %w", err)
	}

	out := formatter.File(path, string(src))
	if out == string(src) {
		return false, nil
	}

	if !w.dryRun {
		if err := renameio.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
			return false, fmt.Errorf("write file: %w", err)
		}
	}

	return true, nil
}
