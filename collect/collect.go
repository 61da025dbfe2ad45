// Package collect concatenates the source files of a directory tree into
// a single file, so a whole codebase can be handed to a model as one
// context document.
package collect

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	headerSeparator = "=========================================="
	fileSeparator   = "--------------------"
)

// Options configures a collection run. Dir and Out are mandatory, the
// rest default to scanning Python sources.
type Options struct {
	Dir     string   // root directory to scan
	Out     string   // output file, created or truncated
	Ext     string   // suffix of files to collect, default ".py"
	Exclude string   // exact file name to skip, default "__init__.py"
	Label   string   // header label, default "Python files"
	Ignore  []string // optional doublestar patterns of relative paths to skip
}

func (o *Options) setDefaults() {
	if o.Ext == "" {
		o.Ext = ".py"
	}
	if o.Exclude == "" {
		o.Exclude = "__init__.py"
	}
	if o.Label == "" {
		o.Label = "Python files"
	}
}

// Run walks the tree under o.Dir and writes every file whose name ends
// in o.Ext, except those named exactly o.Exclude, to o.Out. Each file is
// written as a block: its path, a separator line, its verbatim contents
// and a blank line. It returns the number of files collected.
//
// The directory is checked before the output file is touched: a missing
// or non-directory Dir leaves any pre-existing output file untouched.
// Traversal is lexicographic, so two runs over the same tree produce
// byte-identical output. A file that cannot be read fails the whole run.
func Run(o Options) (int, error) {
	o.setDefaults()

	info, err := os.Stat(o.Dir)
	if err != nil || !info.IsDir() {
		return 0, fmt.Errorf("directory %q not found", o.Dir)
	}

	out, err := os.Create(o.Out)
	if err != nil {
		return 0, fmt.Errorf("cannot create output file: %w", err)
	}

	count := 0
	_, err = fmt.Fprintf(out, "%s content from directory: %s\n%s\n", o.Label, o.Dir, headerSeparator)
	if err == nil {
		err = filepath.WalkDir(o.Dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			name := d.Name()
			if !strings.HasSuffix(name, o.Ext) || name == o.Exclude {
				return nil
			}
			if ignored, err := o.ignored(path); err != nil || ignored {
				return err
			}
			if err := appendFile(out, path); err != nil {
				return err
			}
			count++
			return nil
		})
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return count, err
}

// ignored reports whether the file's path relative to the root matches
// any of the ignore patterns.
func (o *Options) ignored(path string) (bool, error) {
	if len(o.Ignore) == 0 {
		return false, nil
	}
	rel, err := filepath.Rel(o.Dir, path)
	if err != nil {
		return false, err
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range o.Ignore {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// appendFile writes one file block: path, separator, contents, blank line.
func appendFile(w io.Writer, path string) error {
	if _, err := fmt.Fprintf(w, "File: %s\n%s\n", path, fileSeparator); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
