package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/renraku-cli/renraku/pkg/datekey"
	"github.com/renraku-cli/renraku/pkg/record"
)

// documentKey names the single diskv entry holding the whole serialized
// mapping of date keys to records.
const documentKey = "calendar-data"

// Persistence defines the persistence contract for day records. The backing
// document is read once when the Persistence is created; every Put rewrites
// it in full.
type Persistence interface {
	All(ctx context.Context) map[string]record.Record
	Keys(ctx context.Context) []string
	Get(key string) (record.Record, bool)
	Put(key string, rec record.Record) error
	Reload() error
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
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
	p.days = p.read()
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	mu   sync.RWMutex
	days map[string]record.Record
}

// read materializes the document. Absence and malformed content both come
// back as an empty mapping; a parse failure is noted on stderr but is never
// fatal. Legacy unpadded keys are normalized, unrecognizable keys and empty
// records dropped.
func (p *persistence) read() map[string]record.Record {
	days := make(map[string]record.Record)

	val, err := p.d.Read(documentKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", documentKey, err)
		}
		return days
	}

	raw := make(map[string]record.Record)
	if err := json.Unmarshal(val, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", documentKey, err)
		return days
	}

	for key, rec := range raw {
		canonical, ok := datekey.Normalize(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "store: dropping unrecognized key %q\n", key)
			continue
		}
		rec = rec.Trimmed()
		if rec.Empty() {
			continue
		}
		days[canonical] = rec
	}
	return days
}

func (p *persistence) All(ctx context.Context) map[string]record.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]record.Record, len(p.days))
	for k, v := range p.days {
		out[k] = v
	}
	return out
}

func (p *persistence) Keys(ctx context.Context) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.days))
	for k := range p.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *persistence) Get(key string) (record.Record, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rec, ok := p.days[key]
	return rec, ok
}

// Put stores the record under key, or removes the key when the record is
// empty after trimming. Either way the full document is rewritten.
func (p *persistence) Put(key string, rec record.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec = rec.Trimmed()
	if rec.Empty() {
		delete(p.days, key)
	} else {
		p.days[key] = rec
	}

	data, err := json.Marshal(p.days)
	if err != nil {
		return err
	}
	return p.d.Write(documentKey, data)
}

// Reload re-reads the document from disk, picking up writes made by other
// processes (used by Watch consumers).
func (p *persistence) Reload() error {
	days := p.read()
	p.mu.Lock()
	p.days = days
	p.mu.Unlock()
	return nil
}
