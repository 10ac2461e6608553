package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"toramboss/internal"
)

// WriteDataset replaces the artifact at path with records as indented JSON.
// The file is swapped in by rename so readers never see a half-written file.
func WriteDataset(path string, records []internal.BossRecord) error {
	if records == nil {
		records = []internal.BossRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: encode dataset: %v", internal.ErrIO, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", internal.ErrIO, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", internal.ErrIO, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write %s: %v", internal.ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: write %s: %v", internal.ErrIO, path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", internal.ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", internal.ErrIO, path, err)
	}
	return nil
}

func ReadDataset(path string) ([]internal.BossRecord, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrIO, err)
	}
	var out []internal.BossRecord
	if err := json.Unmarshal(blob, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", internal.ErrParse, path, err)
	}
	return out, nil
}
