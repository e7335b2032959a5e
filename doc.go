// Package lifenav is the core of a personal life navigator: one local user
// keeping goals, tasks, a mood log, social connections, learning resources,
// personal finances and motivational content on their own device.
//
// # Stores
//
// Each domain is an independent store under pkg/ that owns its state in memory
// and writes it through to a [kv.Backend] after every change. [Open] wires them
// all over a single backend and returns a [Navigator].
//
// # Onboarding
//
// The navigator starts in the not-onboarded state. [profile.Store.CompleteOnboarding]
// creates the user and opens the gate, and [profile.Store.Logout] closes it again
// without touching the other stores. [Navigator.RequireOnboarded] reports
// [ErrNotOnboarded] while the gate is closed.
//
// # Recurring transactions
//
// Open materializes due recurring finance transactions once at startup, the
// same way the process command of cmd/lifenav does on demand.
//
// [kv.Backend]: github.com/lifenav/lifenav/pkg/kv.Backend
package lifenav
