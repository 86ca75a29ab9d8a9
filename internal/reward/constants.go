package reward

// PermissionEarn must be held for a mining event to pay out
const PermissionEarn = "orevault.earn"

// Log message constants
const (
	// LogMsgRewardPaid is logged after a successful deposit
	LogMsgRewardPaid = "mining reward paid"

	// LogMsgDepositFailed is logged when the ledger rejects a deposit
	LogMsgDepositFailed = "ledger deposit failed"

	// LogMsgStatWriteDropped is logged when the statistic queue is full
	LogMsgStatWriteDropped = "statistic write dropped, queue full"

	// LogMsgTableEntryDropped is logged when a config reward entry is rejected
	LogMsgTableEntryDropped = "reward entry dropped"

	// LogMsgTableReloaded is logged after a successful table reload
	LogMsgTableReloaded = "reward table reloaded"

	// LogMsgLedgerDeposit is logged by the default ledger on deposit
	LogMsgLedgerDeposit = "deposit recorded"
)

// Error message constants
const (
	// ErrMsgRecordStatistic wraps statistic persistence failures
	ErrMsgRecordStatistic = "record statistic"
)
