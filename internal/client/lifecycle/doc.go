// Package lifecycle derives presentation state for auctions and products:
// the human countdown to an auction's end, status and condition badges,
// reserve progress, stock state and seller rating.
//
// Everything here is a pure function of its inputs except StartCountdown,
// which owns a goroutine that re-renders the countdown at a fixed cadence
// until the auction ends or the owning context is cancelled.
package lifecycle
