// Package goldwatch reconstructs the flow of gold and luxury resources
// between the players of a running game, from the trade events found in the
// game's log files.
//
// The core functionalities include:
//   - Ledger Management: ingesting discrete trade deals (one-shot and
//     multi-turn gold-per-turn deals) as they appear in the logs, advancing
//     an internal turn clock driven by the events themselves rather than a
//     wall clock.
//   - Interest Accrual: compounding every sent and received amount once per
//     turn at a fixed rate, so that early generosity is valued above late
//     generosity.
//   - Per-Player Accounting: one aggregate balance sheet per player plus
//     pairwise sheets against every counterparty, with a frozen snapshot
//     taken at the close of every turn.
//   - Historical Views: tabular reports and net-balance series for any past
//     turn, not just the latest one.
//   - Session Detection: a turn number moving backward in the log means a new
//     game started underneath the watcher; the ledger resets while keeping
//     player identities, which resolve asynchronously.
//
// This package serves as the foundational logic for the `gw` command-line
// tool; the log tailing, line parsing, and terminal rendering live in the
// tail, civlog, and renderer subpackages.
package goldwatch
