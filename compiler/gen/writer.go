package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"golang.org/x/tools/imports"
)

// arityFile matches the names of generated arity files.
var arityFile = regexp.MustCompile(`^arity_(\d{3})\.go$`)

// outcome of writing a single file.
type outcome int

const (
	unchanged outcome = iota
	written
)

// String returns the outcome as logged.
func (o outcome) String() string {
	if o == written {
		return "written"
	}
	return "unchanged"
}

// format runs goimports over a rendered file. On failure the unformatted
// source is kept next to the target for debugging.
func format(path string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		// Errors are ignored here as generation already failed.
		debugPath := path + ".error"
		_ = os.WriteFile(debugPath, src, 0o644)
		return nil, NewGenerationError("format", filepath.Base(path), "unformatted source written to "+debugPath, err)
	}
	return formatted, nil
}

// writeIfChanged writes data to path unless the file already holds exactly
// those bytes, so unchanged files keep their modification time.
func writeIfChanged(path string, data []byte) (outcome, error) {
	current, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(current, data):
		return unchanged, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return unchanged, NewGenerationError("write", filepath.Base(path), "read existing file", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return unchanged, NewGenerationError("write", filepath.Base(path), "", err)
	}
	return written, nil
}

// generatedFile is an arity file found in the target directory.
type generatedFile struct {
	name  string
	arity int
}

// scanGenerated lists the arity files in dir that carry header. Files that
// match the naming scheme but were not written by the generator are left
// alone.
func scanGenerated(dir, header string) ([]generatedFile, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, NewGenerationError("cleanup", "", "read target directory", err)
	}
	var files []generatedFile
	for _, e := range entries {
		m := arityFile.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		ok, err := hasHeader(filepath.Join(dir, e.Name()), header)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		files = append(files, generatedFile{name: e.Name(), arity: n})
	}
	return files, nil
}

// hasHeader reports whether the file at path starts with the header comment.
func hasHeader(path, header string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, NewGenerationError("cleanup", filepath.Base(path), "open", err)
	}
	defer f.Close()
	prefix := []byte(headerLine(header))
	buf := make([]byte, len(prefix))
	if _, err := io.ReadFull(f, buf); err != nil {
		return false, nil
	}
	return bytes.Equal(buf, prefix), nil
}

// headerLine renders the header as a line comment.
func headerLine(header string) string {
	return fmt.Sprintf("// %s", header)
}
