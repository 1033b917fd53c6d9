package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

// PostRepository changes the status of marketplace listings. A post id lives
// in either the package or the trip listing table.
type PostRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostRepository(db *sqlx.DB, txGetter TxGetter) *PostRepository {
	return &PostRepository{db: db, txGetter: txGetter}
}

// Reopen sets the post back to OPEN and reports which table it was found in.
// sql.ErrNoRows is returned when neither table has the post.
func (r *PostRepository) Reopen(ctx context.Context, postID uuid.UUID, at time.Time) (models.PostKind, error) {
	for _, kind := range []models.PostKind{models.PostKindPackage, models.PostKindTrip} {
		query := fmt.Sprintf(`UPDATE %s SET status = $2, updated_at = $3 WHERE post_id = $1`, kind)
		args := []any{postID, models.PostStatusOpen, at}

		res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		logger.Log.Infow(
			"query", query,
			"args", args,
			"result", rowsAffected,
			"error", err,
		)

		if err != nil {
			return "", err
		}
		if rowsAffected > 0 {
			return kind, nil
		}
	}
	return "", fmt.Errorf("post %s: %w", postID, sql.ErrNoRows)
}
