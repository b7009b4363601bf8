package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/vita/pkg/health"
)

// ErrNotFound is returned when a record id has no stored value.
var ErrNotFound = errors.New("store: not found")

// Kind names a record bucket inside the database.
type Kind string

const (
	KindLog          Kind = "logs"
	KindCatalog      Kind = "catalog"
	KindReminder     Kind = "reminders"
	KindUser         Kind = "users"
	KindNotification Kind = "notifications"
)

// ScheduledNotification is a persisted best-effort notification slot for a
// reminder.
type ScheduledNotification struct {
	ID         string           `json:"id"`
	ReminderID string           `json:"reminderId"`
	FireAt     health.Timestamp `json:"fireAt"`
}

// Persistence is the embedded object database contract the services build on.
// All reads return decoded copies; callers never share mutable records with
// the store.
type Persistence interface {
	Logs(ctx context.Context, userID string) []*health.Log
	StoreLog(userID string, l *health.Log) error
	DeleteLog(userID, id string) error

	CatalogItems(ctx context.Context, userID string) []*health.CatalogItem
	StoreCatalogItem(userID string, item *health.CatalogItem) error

	Reminders(ctx context.Context, userID string) []*health.Reminder
	StoreReminder(userID string, r *health.Reminder) error
	DeleteReminder(userID, id string) error

	User(id string) (*health.User, error)
	Users(ctx context.Context) []*health.User
	StoreUser(u *health.User) error

	Notifications(ctx context.Context, userID string) []*ScheduledNotification
	StoreNotification(userID string, n *ScheduledNotification) error
	DeleteNotification(userID, id string) error

	CurrentUserID() (string, error)
	SetCurrentUserID(id string) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Keys are kind/scope/id triples; the transform maps each segment to a path
// element so every (kind, user) pair gets its own directory.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), "/")
}

func recordKey(kind Kind, scope, id string) string {
	if scope == "" {
		return fmt.Sprintf("%s/%s", kind, id)
	}
	return fmt.Sprintf("%s/%s/%s", kind, scope, id)
}

func (p *persistence) read(key string, target any) error {
	val, err := p.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(val, target)
}

func (p *persistence) write(key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// keysIn iterates stored keys under kind/scope.
func (p *persistence) keysIn(ctx context.Context, kind Kind, scope string) []string {
	prefix := string(kind) + "/"
	if scope != "" {
		prefix += scope + "/"
	}
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (p *persistence) Logs(ctx context.Context, userID string) []*health.Log {
	all := make([]*health.Log, 0)
	for _, key := range p.keysIn(ctx, KindLog, userID) {
		l := &health.Log{}
		if err := p.read(key, l); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, l)
	}
	sortLogs(all)
	return all
}

func (p *persistence) StoreLog(userID string, l *health.Log) error {
	if userID == "" {
		return errors.New("store: user id required")
	}
	if l == nil || l.ID == "" {
		return errors.New("store: log id required")
	}
	return p.write(recordKey(KindLog, userID, l.ID), l)
}

func (p *persistence) DeleteLog(userID, id string) error {
	return p.erase(recordKey(KindLog, userID, id))
}

func (p *persistence) CatalogItems(ctx context.Context, userID string) []*health.CatalogItem {
	all := make([]*health.CatalogItem, 0)
	for _, key := range p.keysIn(ctx, KindCatalog, userID) {
		item := &health.CatalogItem{}
		if err := p.read(key, item); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, item)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})
	return all
}

func (p *persistence) StoreCatalogItem(userID string, item *health.CatalogItem) error {
	if userID == "" {
		return errors.New("store: user id required")
	}
	if item == nil || item.ID == "" {
		return errors.New("store: catalog item id required")
	}
	return p.write(recordKey(KindCatalog, userID, item.ID), item)
}

func (p *persistence) Reminders(ctx context.Context, userID string) []*health.Reminder {
	all := make([]*health.Reminder, 0)
	for _, key := range p.keysIn(ctx, KindReminder, userID) {
		r := &health.Reminder{}
		if err := p.read(key, r); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].NextFireAt.Time.Before(all[j].NextFireAt.Time)
	})
	return all
}

func (p *persistence) StoreReminder(userID string, r *health.Reminder) error {
	if userID == "" {
		return errors.New("store: user id required")
	}
	if r == nil || r.ID == "" {
		return errors.New("store: reminder id required")
	}
	return p.write(recordKey(KindReminder, userID, r.ID), r)
}

func (p *persistence) DeleteReminder(userID, id string) error {
	return p.erase(recordKey(KindReminder, userID, id))
}

func (p *persistence) User(id string) (*health.User, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	u := &health.User{}
	if err := p.read(recordKey(KindUser, "", id), u); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *persistence) Users(ctx context.Context) []*health.User {
	all := make([]*health.User, 0)
	for _, key := range p.keysIn(ctx, KindUser, "") {
		u := &health.User{}
		if err := p.read(key, u); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, u)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Created.Time.Before(all[j].Created.Time)
	})
	return all
}

func (p *persistence) StoreUser(u *health.User) error {
	if u == nil || u.ID == "" {
		return errors.New("store: user id required")
	}
	return p.write(recordKey(KindUser, "", u.ID), u)
}

func (p *persistence) Notifications(ctx context.Context, userID string) []*ScheduledNotification {
	all := make([]*ScheduledNotification, 0)
	for _, key := range p.keysIn(ctx, KindNotification, userID) {
		n := &ScheduledNotification{}
		if err := p.read(key, n); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, n)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].FireAt.Time.Before(all[j].FireAt.Time)
	})
	return all
}

func (p *persistence) StoreNotification(userID string, n *ScheduledNotification) error {
	if userID == "" {
		return errors.New("store: user id required")
	}
	if n == nil || n.ID == "" {
		return errors.New("store: notification id required")
	}
	return p.write(recordKey(KindNotification, userID, n.ID), n)
}

func (p *persistence) DeleteNotification(userID, id string) error {
	return p.erase(recordKey(KindNotification, userID, id))
}

const currentUserFile = ".current-user"

// CurrentUserID returns the persisted user bookmark, or "" when none is set.
func (p *persistence) CurrentUserID() (string, error) {
	data, err := os.ReadFile(p.currentUserPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SetCurrentUserID persists the bookmark; an empty id clears it.
func (p *persistence) SetCurrentUserID(id string) error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	path := p.currentUserPath()
	if id == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(id+"\n"), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (p *persistence) currentUserPath() string {
	return filepath.Join(p.basePath, currentUserFile)
}

func (p *persistence) erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func sortLogs(logs []*health.Log) {
	sort.SliceStable(logs, func(i, j int) bool {
		left := logs[i]
		right := logs[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		if lt.Equal(rt) {
			return left.ID < right.ID
		}
		return lt.After(rt) // newest first
	})
}
