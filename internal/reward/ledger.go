package reward

import (
	"context"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/logger"
)

// Ledger credits reward amounts to a player's balance. The economy
// itself lives outside this service; implementations bridge to it.
type Ledger interface {
	Deposit(ctx context.Context, playerID uuid.UUID, amount float64) error
}

// LoggingLedger records deposits in the log only. It is the default
// wiring when no external economy is attached.
type LoggingLedger struct{}

// Deposit logs the credited amount
func (LoggingLedger) Deposit(ctx context.Context, playerID uuid.UUID, amount float64) error {
	logger.FromContext(ctx).Info(LogMsgLedgerDeposit, "player_id", playerID, "amount", amount)
	return nil
}
