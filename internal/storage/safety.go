package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/logging"
)

// MinFreeSpace is the minimum free space required for write operations (10MB).
const MinFreeSpace = 10 * 1024 * 1024

// FreeSpace returns the bytes available to the current user on the volume
// holding path. Missing trailing components resolve to the nearest existing
// ancestor, so it works for files that are about to be created.
func FreeSpace(path string) (uint64, error) {
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}
	n, err := freeBytes(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get disk space: %w", err)
	}
	return n, nil
}

// CheckDiskSpace refuses writes into a directory whose volume has less than
// MinFreeSpace available. Failing to measure is not an error.
func CheckDiskSpace(path string) error {
	free, err := FreeSpace(path)
	if err != nil {
		logging.DebugLog("disk space check skipped", logging.KeyPath, path, logging.KeyError, err)
		return nil
	}

	if free < MinFreeSpace {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				free/(1024*1024),
				MinFreeSpace/(1024*1024)),
			errors.ErrDiskFull,
		)
	}

	return nil
}

func isDiskFullError(err error) bool {
	return err != nil && errors.Is(err, errNoSpace)
}

// SafeWrite performs a write operation with disk space check.
// It checks disk space before the write and wraps disk-full errors appropriately.
func SafeWrite(path string, data []byte, perm os.FileMode) error {
	// Check disk space before write
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	// Use atomic write pattern: write to temp file, then rename
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, ".quotd-*.tmp")
	if err != nil {
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("create temp file", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Ensure cleanup on failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	// Write data
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("write", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Sync to ensure data is on disk
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("sync", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to sync data: %w", err)
	}

	// Close before rename
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Set permissions
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// EnsureDirectory creates a directory with safe permissions if it doesn't exist.
func EnsureDirectory(path string) error {
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("mkdir", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// SafeAppend appends data to path, creating it with perm if needed. header
// is written before data only when this call creates the file.
func SafeAppend(path string, header, data []byte, perm os.FileMode) error {
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err == nil {
		data = append(append([]byte(nil), header...), data...)
	} else if os.IsExist(err) {
		f, err = os.OpenFile(path, os.O_APPEND|os.O_WRONLY, perm)
	}
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("append", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to append data: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
