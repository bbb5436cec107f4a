// Package progress fabricates a time-driven progress indicator for work that
// reports no intermediate progress of its own.
//
// A Simulator advances a percentage on a fixed tick and walks through an
// ordered list of phase messages as the percentage crosses evenly spaced
// thresholds. It is started and stopped by its owner and never starts
// itself. Stopping always forces the terminal {100, "Done!"} snapshot and
// guarantees that no tick is published afterwards.
package progress
