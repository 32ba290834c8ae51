package preprocessor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourcePath is filePath relative to root, with forward slashes. Paths
// outside root are returned as they are.
func SourcePath(root, filePath string) string {
	if root == "" {
		return filepath.ToSlash(filePath)
	}
	rel, err := filepath.Rel(root, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(filePath)
	}
	return filepath.ToSlash(rel)
}

// OutputPath mirrors filePath under outDir. Files inside root keep their
// path relative to root; anything else is placed by its absolute path.
func OutputPath(root, outDir, filePath string) (string, error) {
	if outDir == "" {
		return "", fmt.Errorf("no output directory configured")
	}

	if root != "" {
		rel, err := filepath.Rel(root, filePath)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.Join(outDir, rel), nil
		}
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}
	return filepath.Join(outDir, absPath), nil
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if f, err := os.Open(path); err == nil {
		_ = f.Sync()
		f.Close()
	}
	return nil
}
