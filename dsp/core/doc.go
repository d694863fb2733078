// Package core holds small numeric helpers shared by the signal packages:
// tolerant float comparison, decimal rounding and the canonical integer
// time keys used when time axes are compared or joined.
package core
