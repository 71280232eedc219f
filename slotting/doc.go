// Package slotting implements the fast-pick area (FPA) design pipeline:
// SKU selection, volume allocation, and physical slot placement.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - sku.go: the SKU record and its derived quantities (flow, viscosity)
//   - benefit.go: the benefit-peak search that decides how many SKUs go in
//   - engine.go: the tiered placement search that assigns slots
//
// # Architecture
//
// The pipeline is a strictly sequential batch computation:
//
//	aggregate.go  transactions + geometry -> eligible SKU records
//	rank.go       viscosity ranking (frequency / sqrt(flow))
//	allocate.go   closed-form sqrt-proportional volume split
//	benefit.go    sweep n = 1..N, pick the benefit-maximizing prefix
//	discretize.go continuous volumes -> box counts and shelf widths
//	affinity.go   part-number patterns + co-pick baskets -> placement groups
//	layout.go     cabinet grid, adjacency, walking distances
//	engine.go     tiered greedy placement into (cabinet, floor) slots
//	pipeline.go   Run() wiring all stages into a Result
//
// Per-SKU data problems (missing geometry, zero demand, no fitting slot) are
// counted and skipped, never fatal; only structural problems (invalid
// configuration, an empty candidate set entering allocation) return errors.
//
// The downstream picking comparison simulation lives in package picksim and
// consumes this package's placement table.
package slotting
