package jobs

import (
	"context"

	"careops/internal/metrics"
	"careops/internal/models"
	"careops/internal/repositories"

	"github.com/rs/zerolog"
)

const workspacePageSize = 100

// LowStockScanner walks every workspace and reports items at or below the
// dashboard's low-stock cutoff.
type LowStockScanner struct {
	workspaceRepo repositories.WorkspaceRepository
	inventoryRepo repositories.InventoryRepository
	logger        zerolog.Logger
}

func NewLowStockScanner(workspaceRepo repositories.WorkspaceRepository, inventoryRepo repositories.InventoryRepository, logger zerolog.Logger) *LowStockScanner {
	return &LowStockScanner{
		workspaceRepo: workspaceRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger.With().Str("job", "low-stock-scan").Logger(),
	}
}

// Scan returns the number of low-stock items found. Failing workspaces are
// logged and skipped; only a failure to list workspaces aborts the scan.
func (s *LowStockScanner) Scan(ctx context.Context) (int, error) {
	alerts := 0
	scanned := 0

	for offset := 0; ; offset += workspacePageSize {
		workspaces, err := s.workspaceRepo.List(ctx, workspacePageSize, offset)
		if err != nil {
			s.logger.Error().Err(err).Int("offset", offset).Msg("failed to list workspaces")
			return alerts, err
		}

		for _, ws := range workspaces {
			scanned++
			items, err := s.inventoryRepo.ListLowStock(ctx, ws.ID, models.LowStockCutoff)
			if err != nil {
				s.logger.Error().Err(err).Str("workspace_id", ws.ID.String()).Msg("failed to list low stock items")
				continue
			}
			for _, item := range items {
				s.logger.Warn().
					Str("workspace_id", ws.ID.String()).
					Str("workspace", ws.Name).
					Str("item", item.Name).
					Int("quantity", item.Quantity).
					Int("threshold", item.Threshold).
					Msg("low stock")
			}
			alerts += len(items)
		}

		if len(workspaces) < workspacePageSize {
			break
		}
	}

	metrics.SetLowStockItems(alerts)
	s.logger.Info().Int("workspaces", scanned).Int("alerts", alerts).Msg("low stock scan completed")
	return alerts, nil
}

// Run adapts Scan to the scheduler's task signature.
func (s *LowStockScanner) Run(ctx context.Context) error {
	_, err := s.Scan(ctx)
	return err
}
