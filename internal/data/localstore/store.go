// Package localstore is a disk-backed data.Backend for running the kiosk
// without its backend server. Records are stored as JSON files under one
// directory per record kind.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/jsonutil"
)

// DefaultTimerName is used when a timer is created without a name.
const DefaultTimerName = "Timer"

const (
	autocompleteLimit = 10
	byCategoryLimit   = 50
)

const (
	kindTimer    = "timers"
	kindItem     = "items"
	kindProduct  = "products"
	kindCategory = "categories"
)

// Ensure Store implements data.Backend.
var _ data.Backend = (*Store)(nil)

// Store persists kiosk records with diskv. Safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	d   *diskv.Diskv
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timers and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates (if needed) and opens a store rooted at dir.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.New("localstore: empty path")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: %w", err)
	}
	s := &Store{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPath,
			InverseTransform:  pathToKey,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func keyToPath(key string) *diskv.PathKey {
	kind, id, _ := strings.Cut(key, "/")
	return &diskv.PathKey{Path: []string{kind}, FileName: id}
}

func pathToKey(pk *diskv.PathKey) string {
	return strings.Join(pk.Path, "/") + "/" + pk.FileName
}

func key(kind, id string) string {
	return kind + "/" + id
}

func newID() string {
	return uuid.NewString()
}

func read[T any](s *Store, kind, id string) (T, error) {
	var v T
	if id == "" || !s.d.Has(key(kind, id)) {
		return v, fmt.Errorf("%s %q: %w", kind, id, data.ErrNotFound)
	}
	b, err := s.d.Read(key(kind, id))
	if err != nil {
		return v, fmt.Errorf("read %s %q: %w", kind, id, err)
	}
	err = jsonutil.UnmarshalWithContext(b, &v, "decode "+kind)
	return v, err
}

func write(s *Store, kind, id string, v interface{}) error {
	b, err := jsonutil.MarshalWithContext(v, "encode "+kind)
	if err != nil {
		return err
	}
	if err := s.d.Write(key(kind, id), b); err != nil {
		return fmt.Errorf("write %s %q: %w", kind, id, err)
	}
	return nil
}

func erase(s *Store, kind, id string) error {
	if id == "" || !s.d.Has(key(kind, id)) {
		return fmt.Errorf("%s %q: %w", kind, id, data.ErrNotFound)
	}
	if err := s.d.Erase(key(kind, id)); err != nil {
		return fmt.Errorf("erase %s %q: %w", kind, id, err)
	}
	return nil
}

// all reads every record of kind. Unreadable records are skipped.
func all[T any](ctx context.Context, s *Store, kind string) ([]T, error) {
	var out []T
	for k := range s.d.KeysPrefix(kind+"/", ctx.Done()) {
		_, id, _ := strings.Cut(k, "/")
		v, err := read[T](s, kind, id)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type timerRecord struct {
	data.Timer
	CreatedAt int64 `json:"created_at_ts"`
}

type productRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id,omitempty"`
}

// ListTimers implements data.TimerService. Running timers report the time
// left now and turn finished when it reaches zero.
func (s *Store) ListTimers(ctx context.Context) ([]data.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := all[timerRecord](ctx, s, kindTimer)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].CreatedAt < recs[j].CreatedAt })

	now := s.now().Unix()
	out := make([]data.Timer, 0, len(recs))
	for _, r := range recs {
		if r.Status == data.TimerRunning && r.StartedAt != nil {
			remaining := r.RemainingSec - int(now-*r.StartedAt)
			if remaining <= 0 {
				r.Status = data.TimerFinished
				r.RemainingSec = 0
				r.StartedAt = nil
				if err := write(s, kindTimer, r.ID, r); err != nil {
					return nil, err
				}
			} else {
				r.RemainingSec = remaining
			}
		}
		out = append(out, r.Timer)
	}
	return out, nil
}

// CreateTimer implements data.TimerService. New timers start immediately.
func (s *Store) CreateTimer(ctx context.Context, durationSec int, name string) (data.Timer, error) {
	if durationSec <= 0 {
		return data.Timer{}, fmt.Errorf("duration %d: %w", durationSec, data.ErrInvalid)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTimerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().Unix()
	r := timerRecord{
		Timer: data.Timer{
			ID:           newID(),
			Name:         name,
			DurationSec:  durationSec,
			RemainingSec: durationSec,
			Status:       data.TimerRunning,
			StartedAt:    &now,
		},
		CreatedAt: now,
	}
	if err := write(s, kindTimer, r.ID, r); err != nil {
		return data.Timer{}, err
	}
	return r.Timer, nil
}

// StartTimer implements data.TimerService.
func (s *Store) StartTimer(ctx context.Context, id string) (data.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := read[timerRecord](s, kindTimer, id)
	if err != nil {
		return data.Timer{}, err
	}
	if r.Status == data.TimerRunning {
		return r.Timer, nil
	}
	now := s.now().Unix()
	r.Status = data.TimerRunning
	r.StartedAt = &now
	if err := write(s, kindTimer, id, r); err != nil {
		return data.Timer{}, err
	}
	return r.Timer, nil
}

// PauseTimer implements data.TimerService. Pausing freezes the time left.
func (s *Store) PauseTimer(ctx context.Context, id string) (data.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := read[timerRecord](s, kindTimer, id)
	if err != nil {
		return data.Timer{}, err
	}
	if r.Status != data.TimerRunning || r.StartedAt == nil {
		return r.Timer, nil
	}
	remaining := r.RemainingSec - int(s.now().Unix()-*r.StartedAt)
	if remaining < 0 {
		remaining = 0
	}
	r.RemainingSec = remaining
	r.DurationSec = remaining
	r.Status = data.TimerPaused
	r.StartedAt = nil
	if err := write(s, kindTimer, id, r); err != nil {
		return data.Timer{}, err
	}
	return r.Timer, nil
}

// DeleteTimer implements data.TimerService.
func (s *Store) DeleteTimer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return erase(s, kindTimer, id)
}
