package nextversion

import (
	"errors"
	"fmt"
)

// ErrInvalidVersionFormat reports a version string that does not parse as
// three non-negative dot-separated integers.
var ErrInvalidVersionFormat = errors.New("invalid version format")

// LifecycleViolationError reports an illegal pre-release channel
// transition, e.g. beta back to alpha. It is surfaced as a non-fatal
// decision result, never a panic or process exit.
type LifecycleViolationError struct {
	From Channel
	To   Channel
}

func (e *LifecycleViolationError) Error() string {
	return fmt.Sprintf("invalid pre-release transition: %s -> %s",
		channelLabel(e.From), channelLabel(e.To))
}

// Instructions returns a human-readable remediation hint for the
// violation, suitable for the actionInstructions decision field.
func (e *LifecycleViolationError) Instructions() string {
	return fmt.Sprintf(
		"The current release is on the %s channel; moving back to %s is not allowed. "+
			"Continue on %s or release a stable version first.",
		channelLabel(e.From), channelLabel(e.To), channelLabel(e.From))
}

func channelLabel(c Channel) string {
	if c == ChannelNone {
		return "stable"
	}
	return string(c)
}
