package output

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

const filePermissions = 0o644

// WriteFile replaces path with content atomically: the content goes to a temp
// file in the same directory which is then renamed over path.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fsError(err, "create output directory", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fsError(err, "create temp file", dir)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fsError(err, "write temp file", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fsError(err, "sync temp file", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fsError(err, "close temp file", tmpName)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		cleanup()
		return fsError(err, "chmod temp file", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fsError(err, "replace output file", path)
	}
	return nil
}

func fsError(err error, msg, path string) error {
	return errors.WrapError(err, errors.CategoryFileSystem, msg).
		Fatal().
		WithContext("path", path).
		Build()
}
