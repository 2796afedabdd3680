package nextversion

import "strings"

// ChannelTable maps exact branch names to pre-release channels. Lookup is
// by full name only; a branch like "feature/alpha-login" never matches the
// alpha channel just because the word appears in it.
type ChannelTable struct {
	entries map[string]Channel
}

// DefaultChannelTable returns the built-in branch-to-channel mapping:
// release and mainline branches produce stable versions, staging
// produces betas, and development branches produce alphas.
func DefaultChannelTable() *ChannelTable {
	return &ChannelTable{entries: map[string]Channel{
		"release":     ChannelNone,
		"main":        ChannelNone,
		"master":      ChannelNone,
		"staging":     ChannelBeta,
		"dev":         ChannelAlpha,
		"development": ChannelAlpha,
	}}
}

// Lookup classifies a branch name. The name is lowercased once, then
// matched exactly against the table. Unrecognized branches return
// (ChannelNone, false): they behave like stable for version-shape
// purposes, and the caller may surface the miss as informational.
func (t *ChannelTable) Lookup(branch string) (Channel, bool) {
	channel, ok := t.entries[strings.ToLower(branch)]
	return channel, ok
}

// WithOverrides returns a new table with the given entries layered over
// the receiver's. Override keys are lowercased; the receiver is not
// modified.
func (t *ChannelTable) WithOverrides(overrides map[string]Channel) *ChannelTable {
	merged := make(map[string]Channel, len(t.entries)+len(overrides))
	for name, channel := range t.entries {
		merged[name] = channel
	}
	for name, channel := range overrides {
		merged[strings.ToLower(name)] = channel
	}
	return &ChannelTable{entries: merged}
}
