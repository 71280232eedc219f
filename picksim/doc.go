// Package picksim is the downstream discrete-event simulation that compares
// picker productivity before and after the fast-pick area redesign.
//
// It consumes the slotting pipeline's placement table (one walking distance
// per placed SKU) and replays a shift of pick orders through a pool of
// pickers under two scenarios:
//
//   - before: random storage, triangular walk distances plus search time
//   - after: fixed FPA locations, cabinet walking distance and no search
//
// Activity times are drawn from triangular distributions; arrivals follow a
// Poisson process over the shift. Runs are deterministic per seed.
package picksim
