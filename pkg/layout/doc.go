/*
Package layout implements the multi-document workspace layout engine.

Given the ordered list of open documents and the workspace size, each layout
mode computes every document's position, dimensions, stacking order and
visibility. Three policies exist:

  - Stacked: one centered document at a time, the rest hidden but addressable.
  - Grid: all documents in a wrapping grid of fixed-size cells.
  - Freeform: user-controlled absolute positioning, clamped to the workspace.

All computation is synchronous, pure and side-effect-free. Strategies hold no
per-call state, so concurrent layout passes are safe without locking. Output
order always mirrors input order.

The Mode value also owns the single transition rule of the engine: the
advisory ShouldAutoSwitchToFreeform, which tells the caller that a manual
drag or resize gesture should commit a switch to Freeform. Committing the
transition is the caller's job; the engine itself never mutates the mode.
*/
package layout
