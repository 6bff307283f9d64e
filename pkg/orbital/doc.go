// Package orbital models a series of molecular-orbital plots and the
// command scripts that drive ORCA's orca_plot renderer.
//
// # Overview
//
// A plot series is described by an inclusive [Range] of orbital indices, a
// [SpinSelection] and an [OutputFormat]. [Jobs] expands these into the
// ordered list of [Job] values, one per (orbital, spin channel) pair:
//
//	r, _ := orbital.NewRange(10, 12)
//	jobs := orbital.Jobs(r, orbital.SpinBoth)
//	// (10,alpha) (10,beta) (11,alpha) (11,beta) (12,alpha) (12,beta)
//
// # Scripts
//
// orca_plot is interactive: it reads numbered menu choices from stdin.
// [BuildScript] produces the fixed five-section sequence for one job:
//
//	4        grid-based plot
//	80       grid points
//	2        select orbital
//	5        orbital index
//	3        spin selection
//	0 1 1    alpha block (1 1 1 for beta)
//	5        output type
//	5        output format value (BINARY)
//	10       generate
//	11       exit
//
// [ParseScript] reverses the process and rejects any text that does not
// follow this grammar.
package orbital
