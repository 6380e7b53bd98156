package accio

import (
	"os"
	"path/filepath"
)

// ResolveRoot turns the base directory of a search into an absolute path with
// every symlink resolved. An empty path means the working directory.
func ResolveRoot(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", newResolveRootError(path, err)
		}
		path = wd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", newResolveRootError(path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newResolveRootError(abs, err)
	}

	return resolved, nil
}

