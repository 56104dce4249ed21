package jobs

import (
	"context"

	"toolroom-backend/internal/logger"
)

// MarkOverdueTools runs the overdue sweep: tools with lapsed open checkouts
// get their cached status set to Overdue.
func (jr *JobRunner) MarkOverdueTools() {
	jr.runWithRecovery("MarkOverdueTools", func() {
		ctx := context.Background()

		updated, err := jr.services.Overdue.Sweep(ctx)
		if err != nil {
			logger.Error("Overdue sweep failed", "error", err)
			return
		}
		logger.Info("Overdue sweep completed", "tools_marked", updated)
	})
}

// SendOverdueReminders emails every holder of an open overdue checkout.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		records, err := jr.services.Overdue.ListOverdueHolders(ctx)
		if err != nil {
			logger.Error("Failed to list overdue holders", "error", err)
			return
		}

		count := 0
		for i := range records {
			rec := &records[i]
			if rec.UserEmail == "" || rec.ExpectedReturnDate == nil {
				continue
			}
			if err := jr.services.Email.SendOverdueReminder(ctx, rec.UserEmail, rec.UserName, rec.ToolName, *rec.ExpectedReturnDate); err != nil {
				logger.Error("Failed to send overdue reminder",
					"transaction_id", rec.ID,
					"user_email", rec.UserEmail,
					"error", err)
				continue
			}
			count++
			logger.Debug("Sent overdue reminder", "transaction_id", rec.ID, "user_email", rec.UserEmail)
		}
		logger.Info("Overdue reminders sent", "count", count)
	})
}
