// Package store persists the board of task lists as a single JSON document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"taskmaster/pkg/task"
	"taskmaster/pkg/tasklist"
)

// Persistence is the round trip between the in-memory board and disk.
//
// Load never returns an unusable board: a missing file yields the seeded
// default, and an unreadable one yields the seeded default alongside a
// non-nil error so callers can surface a non-fatal notice. The corrupt
// payload is set aside in the backup vault first.
type Persistence interface {
	Load() ([]*tasklist.List, error)
	Save(lists []*tasklist.List) error
	Path() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence for the data file named by cfg.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &fileStore{
		path:    cfg.DataPath(),
		backups: newBackupVault(cfg.BackupPath()),
	}, nil
}

type fileStore struct {
	path    string
	backups *backupVault
}

func (s *fileStore) Path() string { return s.path }

// The persisted format matches the original taskmaster_data.json layout and
// must stay decodable across versions: a top-level array of list records.
type listRecord struct {
	Name    string         `json:"name"`
	Color   string         `json:"color"`
	Created task.DateStamp `json:"created_at"`
	Items   *[]itemRecord  `json:"items"`
}

type itemRecord struct {
	Text      string          `json:"text"`
	Done      bool            `json:"done"`
	Created   task.Timestamp  `json:"created_at"`
	Completed *task.Timestamp `json:"completed_at"`
}

func (s *fileStore) Load() ([]*tasklist.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Seed(), nil
		}
		return Seed(), fmt.Errorf("store: read %s: %w", s.path, err)
	}

	lists, err := decode(data)
	if err != nil {
		if berr := s.backups.SetAside(data); berr != nil {
			fmt.Fprintf(os.Stderr, "store: set aside corrupt data: %v\n", berr)
		}
		return Seed(), fmt.Errorf("store: parse %s: %w", s.path, err)
	}
	return lists, nil
}

func decode(data []byte) ([]*tasklist.List, error) {
	var records []listRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	now := time.Now()
	lists := make([]*tasklist.List, 0, len(records))
	for i, r := range records {
		// name and items are required; optional fields default below.
		if r.Name == "" {
			return nil, fmt.Errorf("list record %d: missing name", i)
		}
		if r.Items == nil {
			return nil, fmt.Errorf("list record %d (%s): missing items", i, r.Name)
		}

		l := &tasklist.List{
			ID:      uuid.NewString(),
			Name:    r.Name,
			Color:   tasklist.NormalizeColor(r.Color),
			Created: r.Created,
		}
		if l.Created.IsZero() {
			l.Created = task.NewDateStamp(now)
		}
		for _, ir := range *r.Items {
			item := &task.Item{
				ID:        uuid.NewString(),
				Text:      ir.Text,
				Done:      ir.Done,
				Created:   ir.Created,
				Completed: ir.Completed,
			}
			if item.Created.IsZero() {
				item.Created = task.NewTimestamp(now)
			}
			l.Items = append(l.Items, item)
		}
		lists = append(lists, l)
	}
	return lists, nil
}

// Save rewrites the whole board. The previous file is snapshotted into the
// backup vault, then the new content lands via tmp file and rename so a
// crash mid-write cannot corrupt the last good save.
func (s *fileStore) Save(lists []*tasklist.List) error {
	data, err := encode(lists)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	if prev, err := os.ReadFile(s.path); err == nil {
		if berr := s.backups.Snapshot(prev); berr != nil {
			fmt.Fprintf(os.Stderr, "store: snapshot previous data: %v\n", berr)
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure data directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	return nil
}

func encode(lists []*tasklist.List) ([]byte, error) {
	records := make([]listRecord, 0, len(lists))
	for _, l := range lists {
		items := make([]itemRecord, 0, len(l.Items))
		for _, item := range l.Items {
			items = append(items, itemRecord{
				Text:      item.Text,
				Done:      item.Done,
				Created:   item.Created,
				Completed: item.Completed,
			})
		}
		records = append(records, listRecord{
			Name:    l.Name,
			Color:   l.Color,
			Created: l.Created,
			Items:   &items,
		})
	}
	return json.MarshalIndent(records, "", "  ")
}

// SeedListName names the onboarding list created when no data exists yet.
const SeedListName = "Getting Started"

var seedItems = []string{
	"Welcome to TaskMaster Pro!",
	"Click checkboxes to mark tasks complete",
	"Click task text to edit",
	"Use the sidebar to manage your lists",
}

// Seed builds the default board used when no persisted state is available.
func Seed() []*tasklist.List {
	l := tasklist.New(SeedListName)
	for _, text := range seedItems {
		if err := l.AddItem(text); err != nil {
			panic(err) // seed items are fixed non-empty literals
		}
	}
	return []*tasklist.List{l}
}
