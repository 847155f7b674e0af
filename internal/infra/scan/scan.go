package scan

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var resumeExts = map[string]bool{".pdf": true, ".docx": true, ".txt": true}

// FindResumeDocs walks root for resume documents: supported extensions with
// "resume" somewhere in the filename, matching how applicants actually name them.
func FindResumeDocs(root string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		name := strings.ToLower(d.Name())
		if resumeExts[filepath.Ext(name)] && strings.Contains(name, "resume") {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// BuildResumePaths maps resume filenames to paths relative to root so the
// dashboard can link each candidate row to the underlying document.
// With no explicit dirs it searches every non-hidden subdirectory of root.
func BuildResumePaths(root string, dirs []string) (map[string]string, error) {
	var search []string
	if len(dirs) > 0 {
		for _, d := range dirs {
			full := filepath.Join(root, d)
			if info, err := os.Stat(full); err == nil && info.IsDir() {
				search = append(search, full)
			}
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
				search = append(search, filepath.Join(root, e.Name()))
			}
		}
	}

	paths := make(map[string]string)
	for _, dir := range search {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".pdf") {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			paths[d.Name()] = filepath.ToSlash(rel)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// WriteResumePaths persists the filename map for the dashboard to fetch.
func WriteResumePaths(path string, paths map[string]string) error {
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
