package jobs

import (
	"context"

	"carrental-backend/internal/logger"
)

// CompleteExpiredOrders completes ACTIVE orders whose end date has
// passed, releasing their vehicles and closing their contracts.
func (jr *JobRunner) CompleteExpiredOrders() {
	jr.runWithRecovery("CompleteExpiredOrders", func() {
		ctx := context.Background()

		count, err := jr.services.Order.ProcessExpired(ctx)
		if err != nil {
			logger.Error("Failed to complete expired orders", "error", err)
			return
		}
		logger.Info("Completed expired orders", "count", count)
	})
}

// CompleteExpiredContracts completes ACTIVE contracts whose end date
// has passed. Runs after CompleteExpiredOrders to catch contracts whose
// orders were closed out of band.
func (jr *JobRunner) CompleteExpiredContracts() {
	jr.runWithRecovery("CompleteExpiredContracts", func() {
		ctx := context.Background()

		count, err := jr.services.Contract.ProcessExpired(ctx)
		if err != nil {
			logger.Error("Failed to complete expired contracts", "error", err)
			return
		}
		logger.Info("Completed expired contracts", "count", count)
	})
}
