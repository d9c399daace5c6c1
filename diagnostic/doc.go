// Package diagnostic collects structured errors, warnings and notes produced
// while checking a mapping specification.
//
// Checks never stop at the first defect: every problem found in a pass is
// recorded so a caller can report them all at once.
package diagnostic
