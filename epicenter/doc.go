// Package epicenter chooses the cells where a new outbreak originates in the
// current timestep.
//
// What
//
//  1. Pristine scan: the landscape is pristine for the agent when no active
//     cell is in LastZone and no active cell was disturbed by this agent in
//     the previous timestep.
//  2. Candidate pass, a second full scan:
//     - inside:  Severity ≥ OutbreakEpicenterThresh, or the cell was disturbed
//       by this agent last timestep with LastEventSeverity ≥ the same threshold;
//     - outside: not inside, LastZone == None and
//       Vulnerability ≥ EpidemicThresh.
//  3. Inside epicenters: shuffle, keep floor(N × OutbreakEpicenterCoeff).
//  4. Outside epicenters (SeedEpicenter only): shuffle, keep
//     RoundToEven(SeedEpicenterMax × p / (SeedEpicenterCoeff + p)) where p is
//     the outside-candidate share of active cells (Michaelis–Menten).
//  5. Fallback (pristine only): while fewer epicenters than the agent's
//     previous EpicenterNum exist, draw uniform (row, column) pairs and keep
//     active, not yet chosen cells. The draw loop is capped; exceeding the
//     cap, or asking for more cells than remain, yields ErrFallbackExhausted.
//
// Select never writes to the agent; the caller stores Result.Count() as the
// new EpicenterNum.
//
// Determinism
//
//	Cells are scanned in row-major order and every random decision goes
//	through the supplied rng.Source, so a fixed seed (or rng.Scripted)
//	reproduces the same epicenter list.
//
// Complexity (A = active cells)
//
//   - Time:   O(R×C) scans + O(A) shuffles + O(attempts) fallback draws.
//   - Memory: O(A) candidate lists, O(R×C) chosen flags during fallback.
//
// Options
//
//   - WithMaxAttempts(n): cap on fallback draws (0 ⇒ derived default).
//   - WithDedup(on):      reject fallback cells already chosen (default on).
//
// Errors
//
//   - ErrGridNil, ErrSignalsNil, ErrAgentNil, ErrSourceNil for nil inputs.
//   - ErrOptionViolation for invalid options.
//   - ErrFallbackExhausted when the fallback quota cannot be met.
package epicenter
