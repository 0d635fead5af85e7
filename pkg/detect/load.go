package detect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load decodes a detection document. JSON is tried first, then YAML.
func Load(data []byte) (Result, error) {
	return parseDocument(data, "detection")
}

// LoadFile reads and decodes a detection document from disk.
func LoadFile(path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, errors.New("detect: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("detect: read %s: %w", path, err)
	}
	return parseDocument(data, path)
}

// LoadFS reads and decodes a detection document from an fs.FS.
func LoadFS(fsys fs.FS, path string) (Result, error) {
	if fsys == nil {
		return Result{}, errors.New("detect: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Result{}, fmt.Errorf("detect: read %s: %w", path, err)
	}
	return parseDocument(data, path)
}

func parseDocument(data []byte, source string) (Result, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Result{}, fmt.Errorf("detect: document %s is empty", source)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err == nil {
		return result, nil
	}

	result = Result{}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("detect: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return result, nil
}
