package agentsgen

import "github.com/goliatone/go-agentsgen/pkg/detect"

// LoadDetection decodes a JSON or YAML detection document.
func LoadDetection(data []byte) (Detection, error) {
	return detect.Load(data)
}

// LoadDetectionFile reads and decodes a detection document from disk.
func LoadDetectionFile(path string) (Detection, error) {
	return detect.LoadFile(path)
}
