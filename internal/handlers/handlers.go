// Package handlers contains the interactive flows behind each menu entry.
// A handler prompts, calls into the data layer, and reports the outcome;
// cancellation errors from prompts always propagate to the caller.
package handlers

import (
	"errors"
	"log/slog"

	"chirp/internal/models"
	"chirp/internal/ui"
)

// reportFailure tells the operator about a storage failure and consumes the
// error, keeping the session alive. Any other error propagates unchanged.
func reportFailure(console *ui.Prompter, logger *slog.Logger, err error) error {
	var storeErr *models.StorageError
	if errors.As(err, &storeErr) {
		logger.Error("storage failure", "op", storeErr.Op, "error", storeErr.Err)
		console.Notify(ui.Error("A storage error occurred. Please try again."))
		return nil
	}
	return err
}
