package utils

import "path/filepath"

// GetPathInfo resolves relPath to an absolute, cleaned path and returns it
// together with the directory that contains it.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	return fullPath, filepath.Dir(fullPath), nil
}

// ResolveFrom interprets name relative to baseDir unless it is already
// absolute, and returns the result in absolute form.
func ResolveFrom(baseDir, name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(baseDir, name)
	}
	return filepath.Abs(name)
}
