// Package fintrack provides the functions and types for tracking a personal
// savings plan. It is designed around pure computations over an immutable
// snapshot of transactions, so that every figure on the dashboard can be
// recomputed deterministically from the same input.
//
// The core functionalities include:
//   - Ledger: an ordered, append-only sequence of top-up, profit, and
//     withdrawal records as delivered by the external sheet store.
//   - Aggregation: total functions computing per-kind sums, net balance,
//     return on investment, and goal progress. Degenerate inputs (empty
//     ledger, zero denominators) yield zero values, never errors.
//   - Growth Simulation: a deterministic compound-growth trajectory from a
//     periodic contribution, a per-step rate, and a number of cycles.
//   - Goal Forecast: a linear extrapolation of the average daily profit into
//     an estimated goal-completion date.
//   - Feed Codec: decoding the published CSV feed into a ledger, and the
//     canonical CSV export.
//
// This package serves as the foundational logic for the `fintrack`
// command-line tool; durable transaction state is owned by the external
// spreadsheet store, never by this package.
package fintrack
