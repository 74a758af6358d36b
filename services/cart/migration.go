// File: services/cart/migration.go
package cart

import (
	"context"

	"go.uber.org/zap"

	"caterly/utils"
)

// MigrateLocalCartToRemote moves a device's anonymous cart into the user's
// remote cart at login. Each local line is upserted against the remote store
// with the same one-line-per-package semantics as add-to-cart, and is removed
// from the local store only after the remote write is confirmed. A line whose
// remote write fails stays local for retry on the next login; it is never
// dropped and never counted as migrated. Running the migration again with an
// empty local cart is a no-op, so the operation is idempotent.
func (s *DefaultCartService) MigrateLocalCartToRemote(ctx context.Context, deviceID, userID string) (*MigrationReport, error) {
	if deviceID == "" {
		return nil, newValidationError("device id is required for cart migration")
	}
	if userID == "" {
		return nil, newValidationError("user id is required for cart migration")
	}

	localLines, err := s.LocalRepo.GetLines(ctx, deviceID)
	if err != nil {
		return nil, &PersistenceError{Op: "read local cart", Err: err}
	}

	logger := utils.GetLogger()
	report := &MigrationReport{}

	for _, line := range localLines {
		migrated := line
		migrated.ID = "" // the remote store assigns its own line id
		migrated.OwnerID = userID

		stored, err := s.RemoteRepo.UpsertLine(ctx, userID, migrated)
		if err != nil {
			logger.Warn("cart line migration failed, keeping line in local store",
				zap.String("lineID", line.ID),
				zap.String("packageID", line.PackageID),
				zap.Error(err))
			report.Failed = append(report.Failed, MigrationFailure{
				LineID:    line.ID,
				PackageID: line.PackageID,
				Reason:    err.Error(),
			})
			continue
		}

		// Clear the local copy only after the remote store confirmed the
		// write. A failure here leaves a duplicate local line, which the
		// next migration run upserts harmlessly.
		if err := s.LocalRepo.RemoveLine(ctx, deviceID, line.ID); err != nil {
			logger.Warn("failed to clear migrated line from local store",
				zap.String("lineID", line.ID),
				zap.Error(err))
		}

		report.Migrated = append(report.Migrated, *stored)
	}

	logger.Info("cart migration finished",
		zap.String("userID", userID),
		zap.Int("migrated", len(report.Migrated)),
		zap.Int("failed", len(report.Failed)))
	return report, nil
}
