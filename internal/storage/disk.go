package storage

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Disk stores uploaded payloads in a flat directory keyed by stored name.
// Stored names get a unique suffix so concurrent uploads of the same
// filename never collide. The locator handed back to callers is opaque.
type Disk struct {
	root string
}

// NewDisk creates the storage directory if needed.
func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Disk{root: root}, nil
}

// Root returns the storage directory path.
func (d *Disk) Root() string {
	return d.root
}

// Save writes the payload under a unique stored name derived from the
// original filename's extension and returns that name.
func (d *Disk) Save(originalName string, data []byte) (string, error) {
	stored := fmt.Sprintf("file-%d-%d%s",
		time.Now().UnixMilli(),
		rand.Intn(1_000_000_000),
		filepath.Ext(originalName),
	)
	if err := os.WriteFile(filepath.Join(d.root, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return stored, nil
}

// Delete removes a stored payload. Missing payloads are not an error: the
// record and the payload are deleted independently and either may go first.
func (d *Disk) Delete(storedName string) error {
	// Locators look like "/files/<name>"; accept either form.
	storedName = strings.TrimPrefix(storedName, "/files/")
	if storedName == "" || strings.Contains(storedName, "/") {
		return nil
	}
	err := os.Remove(filepath.Join(d.root, storedName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
