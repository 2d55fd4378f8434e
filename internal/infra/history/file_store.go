package history

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"barista-bot/internal/infra"
	"barista-bot/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// fileMu serializes every read-modify-write on history files in this process.
var fileMu sync.Mutex

// FileStore keeps the whole history as one JSON document keyed by user id.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Load(ctx context.Context) (readmodel.History, error) {
	fileMu.Lock()
	defer fileMu.Unlock()
	return s.load(ctx)
}

func (s *FileStore) Save(ctx context.Context, history readmodel.History) error {
	fileMu.Lock()
	defer fileMu.Unlock()
	return s.save(ctx, history)
}

func (s *FileStore) UserHistory(ctx context.Context, userID string) ([]readmodel.HistoryRecord, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	h, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return h.Clone()[userID], nil
}

func (s *FileStore) Append(ctx context.Context, userID string, record readmodel.HistoryRecord) error {
	return s.mutate(ctx, func(h readmodel.History) {
		h[userID] = append(h[userID], record)
	})
}

// Update replaces the record with the same id, appending it when the user's history
// no longer holds it.
func (s *FileStore) Update(ctx context.Context, userID string, record readmodel.HistoryRecord) error {
	return s.mutate(ctx, func(h readmodel.History) {
		records := h[userID]
		for i := range records {
			if records[i].ID == record.ID {
				records[i] = record
				return
			}
		}
		h[userID] = append(records, record)
	})
}

func (s *FileStore) Delete(ctx context.Context, userID string, recordID uuid.UUID) error {
	return s.mutate(ctx, func(h readmodel.History) {
		records, ok := h[userID]
		if !ok {
			return
		}
		kept := records[:0]
		for _, r := range records {
			if r.ID != recordID {
				kept = append(kept, r)
			}
		}
		h[userID] = kept
	})
}

func (s *FileStore) Reset(ctx context.Context, userID string) error {
	return s.mutate(ctx, func(h readmodel.History) {
		h[userID] = []readmodel.HistoryRecord{}
	})
}

func (s *FileStore) mutate(ctx context.Context, fn func(readmodel.History)) error {
	fileMu.Lock()
	defer fileMu.Unlock()

	h, err := s.load(ctx)
	if err != nil {
		return err
	}
	fn(h)
	return s.save(ctx, h)
}

// load treats a missing file as an empty history.
func (s *FileStore) load(ctx context.Context) (readmodel.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return readmodel.History{}, nil
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindIOFailure, "read history file", err)
	}
	if len(data) == 0 {
		return readmodel.History{}, nil
	}

	h := readmodel.History{}
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDecodeFailure, "decode history file", err)
	}
	return h, nil
}

// save writes a sibling temp file, syncs it and renames it over the target so readers
// see either the old or the new document.
func (s *FileStore) save(ctx context.Context, h readmodel.History) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "encode history", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "create history dir", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "create temp file", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "close temp file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "replace history file", err)
	}
	return nil
}
