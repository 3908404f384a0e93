package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Write writes serialized profile data to path atomically: the data goes
// to a uniquely named temp file in the target directory first, then a
// rename replaces the destination. A crash mid-write never leaves a
// truncated profile for the engine to load.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating profile directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp profile %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing profile %s: %w", path, err)
	}
	return nil
}
