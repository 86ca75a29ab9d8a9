package multiplier

import "time"

// Remaining sentinel values
const (
	// Permanent is returned by Remaining for grants without an expiry
	Permanent time.Duration = -1

	// None is returned by Remaining when no active grant exists
	None time.Duration = 0
)

// permissionPattern matches tier permission nodes carrying a multiplier
// value, for example "orevault.multiplier.1.5". Nodes that do not parse
// as a number are ignored.
const permissionPattern = `^orevault\.multiplier\.(\d+(?:\.\d+)?)$`

// neutral is the identity value for a multiplier source
const neutral = 1.0

// Log message constants
const (
	// LogMsgMultiplierGranted is logged when a temporary multiplier is granted
	LogMsgMultiplierGranted = "temporary multiplier granted"

	// LogMsgMultiplierRevoked is logged when a temporary multiplier is revoked
	LogMsgMultiplierRevoked = "temporary multiplier revoked"

	// LogMsgSweepRemoved is logged when the expiry sweep removes grants
	LogMsgSweepRemoved = "expired multipliers removed"
)
