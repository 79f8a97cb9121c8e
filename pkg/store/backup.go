package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const (
	snapshotPrefix = "data"
	corruptPrefix  = "corrupt"
	backupKeep     = 10
	layoutKey      = "20060102T150405.000000000"
)

// backupVault keeps rotated copies of the data file so a bad save or a
// corrupt load never costs the previous good state.
type backupVault struct {
	d    *diskv.Diskv
	keep int
	now  func() time.Time
}

func newBackupVault(basePath string) *backupVault {
	return &backupVault{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		keep: backupKeep,
		now:  time.Now,
	}
}

// Snapshot stores the previous data file content before it is overwritten,
// pruning the oldest copies beyond the retention count.
func (v *backupVault) Snapshot(data []byte) error {
	if err := v.d.Write(v.key(snapshotPrefix), data); err != nil {
		return fmt.Errorf("backup: write snapshot: %w", err)
	}
	return v.prune(snapshotPrefix)
}

// SetAside preserves an unparsable data file before the store falls back to
// seeded defaults. Set-aside copies are never pruned.
func (v *backupVault) SetAside(data []byte) error {
	if err := v.d.Write(v.key(corruptPrefix), data); err != nil {
		return fmt.Errorf("backup: set aside: %w", err)
	}
	return nil
}

func (v *backupVault) key(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, v.now().Format(layoutKey))
}

func (v *backupVault) keys(prefix string) []string {
	keys := make([]string, 0, v.keep)
	for key := range v.d.Keys(nil) {
		if strings.HasPrefix(key, prefix+"-") {
			keys = append(keys, key)
		}
	}
	// Key suffixes are fixed-width timestamps, so sort order is age order.
	sort.Strings(keys)
	return keys
}

func (v *backupVault) prune(prefix string) error {
	keys := v.keys(prefix)
	for len(keys) > v.keep {
		if err := v.d.Erase(keys[0]); err != nil {
			return fmt.Errorf("backup: prune %s: %w", keys[0], err)
		}
		keys = keys[1:]
	}
	return nil
}
