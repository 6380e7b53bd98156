package accio

import "os"

// Classify decides what the search does with the entry name found at path.
//
// A name equal to target is a match and is never stat'ed. Otherwise the entry
// is a directory only if Lstat says so, so symlinks are never followed, and
// "." and ".." are never directories. A failed Lstat is returned to the caller.
func Classify(fsys FileSystem, name, path, target string) (EntryKind, error) {
	if name == target {
		return KindMatch, nil
	}

	if IsSelfOrParent(name) {
		return KindOther, nil
	}

	if fsys == nil {
		fsys = osFileSystem{}
	}

	info, err := fsys.Lstat(path)
	if err != nil {
		return KindOther, err
	}

	if info.IsDir() {
		return KindDirectory, nil
	}

	return KindOther, nil
}

// IsSelfOrParent reports whether name is "." or ".."
func IsSelfOrParent(name string) bool {
	return name == "." || name == ".."
}

// JoinPath appends name to base with exactly one separator between them.
//
// Unlike filepath.Join the result is not cleaned, so paths keep the exact
// spelling of the root they were discovered from.
func JoinPath(base, name string) string {
	if base == "" {
		return name
	}

	if os.IsPathSeparator(base[len(base)-1]) {
		return base + name
	}

	return base + string(os.PathSeparator) + name
}
