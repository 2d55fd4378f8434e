package commands

import (
	"context"
	"log/slog"
	"strings"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/session"
	"barista-bot/internal/domain/utterance"
	"barista-bot/internal/pkg/errs"
	"barista-bot/internal/usecase/ledger"
	"barista-bot/internal/usecase/readmodel"
	"barista-bot/internal/usecase/shared"
)

var ErrEmptyUserID = errs.New("user id is required")

type OrderingCommands interface {
	HandleUtterance(ctx context.Context, userID, text string) (*readmodel.TurnRM, error)
	ResetSession(ctx context.Context, userID string) error
	MarkPaid(ctx context.Context, userID string, index int, method string) (*readmodel.OrderRM, error)
	CancelOrder(ctx context.Context, userID string, index int) (*readmodel.OrderRM, error)
	ResizeOrder(ctx context.Context, userID string, index int, size string) (*readmodel.OrderRM, error)
	ResetHistory(ctx context.Context, userID string) error
}

type orderingCommandsImpl struct {
	parser   *utterance.Parser
	machine  *session.Machine
	sessions *shared.SessionRegistry
	ledger   *ledger.Ledger
	store    shared.HistoryStore
	narrator shared.Narrator
	logger   *slog.Logger
}

func NewOrderingCommands(
	parser *utterance.Parser,
	machine *session.Machine,
	sessions *shared.SessionRegistry,
	l *ledger.Ledger,
	store shared.HistoryStore,
	narrator shared.Narrator,
	logger *slog.Logger,
) OrderingCommands {
	return &orderingCommandsImpl{
		parser:   parser,
		machine:  machine,
		sessions: sessions,
		ledger:   l,
		store:    store,
		narrator: narrator,
		logger:   logger,
	}
}

// HandleUtterance runs one conversational turn. Before an order is placed the session
// advances only when narration succeeds; once the ledger holds the order the turn always
// completes, falling back to the plain prompt if narration fails.
func (uc *orderingCommandsImpl) HandleUtterance(ctx context.Context, userID, text string) (*readmodel.TurnRM, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var turn *readmodel.TurnRM
	err := uc.sessions.Within(ctx, userID, func(ctx context.Context, current session.Session) (session.Session, error) {
		partial := uc.parser.Extract(text)
		next, out := uc.machine.Step(current, partial)
		if out.Recovered != nil {
			uc.logger.Info("turn recovered",
				slog.String("user_id", userID),
				slog.String("state", current.State().String()),
				slog.String("reason", out.Recovered.Error()))
		}

		turn = &readmodel.TurnRM{State: next.State().String()}
		if out.Finalize {
			fo, index, err := uc.ledger.Checkout(ctx, userID, out.Order)
			if err != nil {
				return current, err
			}
			if !fo.IsPaid() {
				out.Prompt = session.PromptPaymentPending
			}
			turn.State = session.Complete.String()
			turn.Order = ledger.ToOrderRM(fo, index)
		}

		rendered := uc.machine.Render(out, next)
		turn.PromptKind = string(out.Prompt)
		prompt, err := uc.narrator.Narrate(ctx, userID, rendered)
		if err != nil {
			if !out.Finalize {
				return current, errs.Wrap(err, "narrate prompt")
			}
			uc.logger.Warn("narration failed after checkout",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			prompt = rendered
		}
		turn.Prompt = prompt
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return turn, nil
}

func (uc *orderingCommandsImpl) ResetSession(_ context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	uc.sessions.Reset(userID)
	return nil
}

func (uc *orderingCommandsImpl) MarkPaid(ctx context.Context, userID string, index int, method string) (*readmodel.OrderRM, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	pm, ok := catalog.ParsePaymentMethod(method)
	if !ok {
		return nil, errs.Wrapf(errs.ErrInvalidPaymentMethod, "%q", method)
	}
	fo, err := uc.ledger.MarkPaid(ctx, userID, index, pm)
	if err != nil {
		return nil, err
	}
	return ledger.ToOrderRM(fo, index), nil
}

func (uc *orderingCommandsImpl) CancelOrder(ctx context.Context, userID string, index int) (*readmodel.OrderRM, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	fo, err := uc.ledger.Cancel(ctx, userID, index)
	if err != nil {
		return nil, err
	}
	return ledger.ToOrderRM(fo, index), nil
}

func (uc *orderingCommandsImpl) ResizeOrder(ctx context.Context, userID string, index int, size string) (*readmodel.OrderRM, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	fo, err := uc.ledger.Resize(ctx, userID, index, size)
	if err != nil {
		return nil, err
	}
	return ledger.ToOrderRM(fo, index), nil
}

// ResetHistory clears only the durable record; the live ledger is untouched.
func (uc *orderingCommandsImpl) ResetHistory(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := uc.store.Reset(ctx, userID); err != nil {
		return errs.Mark(errs.Wrap(err, "reset history"), errs.ErrPersistenceFailure)
	}
	uc.logger.Info("history reset", slog.String("user_id", userID))
	return nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrEmptyUserID
	}
	return nil
}
