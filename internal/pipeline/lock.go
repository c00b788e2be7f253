package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".tamscraper.lock"

// AcquireLock takes the advisory run lock inside the scan root. The tool
// assumes exclusive access to the tree for the duration of a run; the lock
// turns a violated assumption into an immediate error instead of interleaved
// writes. Callers must Unlock the returned lock when the run ends.
func AcquireLock(root string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(root, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another tamscraper run is already processing this directory")
	}
	return lock, nil
}
