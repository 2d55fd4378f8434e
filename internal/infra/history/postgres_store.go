package history

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"barista-bot/internal/infra"
	"barista-bot/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const selectColumns = `id, user_id, drink, size, temperature, options, price, paid, payment_method, ordered_at`

// PostgresStore keeps one order_history row per record; position preserves insertion order.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

func (s *PostgresStore) Load(ctx context.Context) (readmodel.History, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+selectColumns+` FROM order_history ORDER BY user_id, position`)
	if err != nil {
		return nil, s.dbErr("load history", err)
	}
	defer rows.Close()

	h := readmodel.History{}
	for rows.Next() {
		userID, rec, err := scanRecord(rows)
		if err != nil {
			return nil, s.dbErr("scan history row", err)
		}
		h[userID] = append(h[userID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.dbErr("iterate history rows", err)
	}
	return h, nil
}

func (s *PostgresStore) Save(ctx context.Context, history readmodel.History) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM order_history`); err != nil {
			return err
		}
		for userID, records := range history {
			for _, rec := range records {
				if err := insertRecord(ctx, tx, userID, rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return s.dbErr("save history", err)
	}
	return nil
}

func (s *PostgresStore) UserHistory(ctx context.Context, userID string) ([]readmodel.HistoryRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM order_history WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, s.dbErr("load user history", err)
	}
	defer rows.Close()

	records := []readmodel.HistoryRecord{}
	for rows.Next() {
		_, rec, err := scanRecord(rows)
		if err != nil {
			return nil, s.dbErr("scan history row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.dbErr("iterate history rows", err)
	}
	return records, nil
}

func (s *PostgresStore) Append(ctx context.Context, userID string, record readmodel.HistoryRecord) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return insertRecord(ctx, tx, userID, record)
	})
	if err != nil {
		return s.dbErr("append history record", err)
	}
	return nil
}

// Update overwrites the row with the same id and inserts it when it is gone.
func (s *PostgresStore) Update(ctx context.Context, userID string, record readmodel.HistoryRecord) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_history (id, user_id, drink, size, temperature, options, price, paid, payment_method, ordered_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				drink = EXCLUDED.drink,
				size = EXCLUDED.size,
				temperature = EXCLUDED.temperature,
				options = EXCLUDED.options,
				price = EXCLUDED.price,
				paid = EXCLUDED.paid,
				payment_method = EXCLUDED.payment_method`,
			recordArgs(userID, record)...)
		return err
	})
	if err != nil {
		return s.dbErr("update history record", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID string, recordID uuid.UUID) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM order_history WHERE user_id = $1 AND id = $2`, userID, recordID)
		return err
	})
	if err != nil {
		return s.dbErr("delete history record", err)
	}
	return nil
}

func (s *PostgresStore) Reset(ctx context.Context, userID string) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM order_history WHERE user_id = $1`, userID)
		return err
	})
	if err != nil {
		return s.dbErr("reset history", err)
	}
	return nil
}

func (s *PostgresStore) dbErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return infra.WrapStoreErr(s.logger, infra.KindDuplicateKey, msg, err)
	}
	return infra.WrapStoreErr(s.logger, infra.KindDBFailure, msg, err)
}

func insertRecord(ctx context.Context, tx pgx.Tx, userID string, rec readmodel.HistoryRecord) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_history (id, user_id, drink, size, temperature, options, price, paid, payment_method, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		recordArgs(userID, rec)...)
	return err
}

func recordArgs(userID string, rec readmodel.HistoryRecord) []any {
	options := rec.Options
	if options == nil {
		options = []string{}
	}
	return []any{rec.ID, userID, rec.Drink, rec.Size, rec.Temperature, options, rec.Price, rec.Paid, rec.PaymentMethod, rec.Timestamp}
}

func scanRecord(row pgx.Row) (string, readmodel.HistoryRecord, error) {
	var (
		userID  string
		rec     readmodel.HistoryRecord
		ordered time.Time
	)
	if err := row.Scan(&rec.ID, &userID, &rec.Drink, &rec.Size, &rec.Temperature, &rec.Options,
		&rec.Price, &rec.Paid, &rec.PaymentMethod, &ordered); err != nil {
		return "", readmodel.HistoryRecord{}, err
	}
	rec.Timestamp = ordered.UTC()
	return userID, rec, nil
}
