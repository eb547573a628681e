package workers

import (
	"context"
	"time"

	"gestorzap/models"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// StartTokenJanitor starts a loop that purges revoked and expired refresh tokens.
// The loop stops when ctx is done; the returned channel closes after it exits.
func StartTokenJanitor(ctx context.Context, db *gorm.DB, log *zap.Logger, every time.Duration) <-chan struct{} {
	if log == nil {
		log = zap.NewNop()
	}
	if every <= 0 {
		every = time.Hour
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Debug("token janitor: stop")
				return
			case now := <-ticker.C:
				n, err := PurgeRefreshTokens(db, now)
				if err != nil {
					log.Error("token janitor: purge", zap.Error(err))
					continue
				}
				if n > 0 {
					log.Info("token janitor: purged", zap.Int64("tokens", n))
				}
			}
		}
	}()
	return done
}

// PurgeRefreshTokens apaga os tokens revogados ou vencidos em now.
func PurgeRefreshTokens(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("revoked_at IS NOT NULL OR (expires_at IS NOT NULL AND expires_at < ?)", now).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
