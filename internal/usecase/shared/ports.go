package shared

import (
	"context"

	"barista-bot/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// HistoryStore is the durable mirror of the ledger. Every helper is a full
// load-mutate-save cycle; a failed save must leave the previous state intact.
type HistoryStore interface {
	Load(ctx context.Context) (readmodel.History, error)
	Save(ctx context.Context, history readmodel.History) error
	UserHistory(ctx context.Context, userID string) ([]readmodel.HistoryRecord, error)
	Append(ctx context.Context, userID string, record readmodel.HistoryRecord) error
	Update(ctx context.Context, userID string, record readmodel.HistoryRecord) error
	Delete(ctx context.Context, userID string, recordID uuid.UUID) error
	Reset(ctx context.Context, userID string) error
}

// Narrator lets an external conversational model reword a prompt. A failure must leave
// the session untouched so the same turn can be retried.
type Narrator interface {
	Narrate(ctx context.Context, userID, prompt string) (string, error)
}

type PassthroughNarrator struct{}

func NewPassthroughNarrator() *PassthroughNarrator {
	return &PassthroughNarrator{}
}

func (PassthroughNarrator) Narrate(_ context.Context, _ string, prompt string) (string, error) {
	return prompt, nil
}
