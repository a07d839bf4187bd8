package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// writeJSON writes v as indented JSON to a new file at path. It fails with
// an fs.ErrExist error if path already exists.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return createFile(path, append(b, '\n'), mode)
}

// createFile writes bytes via a temp file, then hard-links it into place.
// Unlike rename, link(2) never replaces an existing name, so a file created
// concurrently by another process is left alone.
func createFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// The temp name goes away on success too; path keeps the inode.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Link(tmp, path)
}

// readJSON reads path into out.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
