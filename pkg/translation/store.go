package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
)

// cacheEntry is the value stored in every cache tier for one translation.
type cacheEntry struct {
	SourceLang     string  `json:"source_lang"`
	TargetLang     string  `json:"target_lang"`
	TranslatedText string  `json:"translated_text"`
	Provider       string  `json:"provider"`
	Confidence     float64 `json:"confidence"`
}

// Store is the durable (L3) cache tier backed by TranslationRecord rows.
// Reads record the access; writes upsert on source_hash so concurrent
// misses converge. Implements cache.DurableStore.
type Store struct {
	client *ent.Client
}

// NewStore creates the durable tier over an Ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Get fetches the entry for key and bumps its access counters. A missing
// row is not an error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	rec, err := s.client.TranslationRecord.Query().
		Where(translationrecord.SourceHash(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying translation record: %w", err)
	}

	// The access bump is bookkeeping for GC; a failure must not turn a
	// cache hit into a miss.
	err = s.client.TranslationRecord.Update().
		Where(translationrecord.SourceHash(key)).
		AddAccessCount(1).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Warn("Translation access bump failed", "error", err)
	}

	entry := cacheEntry{
		SourceLang:     rec.SourceLang,
		TargetLang:     rec.TargetLang,
		TranslatedText: rec.TranslatedText,
		Provider:       rec.Provider,
		Confidence:     rec.Confidence,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, false, fmt.Errorf("encoding translation entry: %w", err)
	}
	return data, true, nil
}

// Put inserts or updates the row for key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	var entry cacheEntry
	if err := json.Unmarshal(value, &entry); err != nil {
		return fmt.Errorf("decoding translation entry: %w", err)
	}

	err := s.client.TranslationRecord.Create().
		SetSourceHash(key).
		SetSourceLang(entry.SourceLang).
		SetTargetLang(entry.TargetLang).
		SetTranslatedText(entry.TranslatedText).
		SetProvider(entry.Provider).
		SetConfidence(entry.Confidence).
		OnConflictColumns(translationrecord.FieldSourceHash).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting translation record: %w", err)
	}
	return nil
}

// GC removes rows with fewer than minAccess accesses that have not been
// read since the cutoff. Returns the number of rows removed.
func (s *Store) GC(ctx context.Context, minAccess int, olderThan time.Duration) (int, error) {
	n, err := s.client.TranslationRecord.Delete().
		Where(
			translationrecord.AccessCountLT(minAccess),
			translationrecord.LastAccessedLT(time.Now().Add(-olderThan)),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("collecting stale translation records: %w", err)
	}
	return n, nil
}

// GCLoop periodically enforces the retention policy on the durable tier.
// Safe to run from multiple processes: the delete is idempotent.
type GCLoop struct {
	store     *Store
	interval  time.Duration
	minAccess int
	olderThan time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewGCLoop creates a GC loop with the documented defaults: rows with fewer
// than 5 accesses untouched for 30 days are collected every 6 hours.
func NewGCLoop(store *Store) *GCLoop {
	return &GCLoop{
		store:     store,
		interval:  6 * time.Hour,
		minAccess: 5,
		olderThan: 30 * 24 * time.Hour,
	}
}

// Start launches the background GC loop.
func (l *GCLoop) Start(ctx context.Context) {
	if l.cancel != nil {
		return
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})

	go l.run(ctx)

	slog.Info("Translation cache GC started",
		"interval", l.interval, "min_access", l.minAccess, "older_than", l.olderThan)
}

// Stop signals the loop to exit and waits for it to finish.
func (l *GCLoop) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
	slog.Info("Translation cache GC stopped")
}

func (l *GCLoop) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := l.store.GC(ctx, l.minAccess, l.olderThan)
			if err != nil {
				slog.Error("Translation cache GC failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Translation cache GC removed rows", "count", n)
			}
		}
	}
}
