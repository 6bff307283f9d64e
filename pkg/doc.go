// Package pkg provides the libraries behind moplots, a driver for ORCA's
// orca_plot that renders a contiguous series of molecular orbitals.
//
// # Overview
//
// orca_plot is interactive: it reads menu choices from stdin. moplots writes
// one command script per orbital and spin channel, feeds it to orca_plot and
// keeps the renderer output next to the script. The pkg directory is
// organized as follows:
//
//  1. [orbital] - Orbital ranges, spin selections, output formats and the
//     script protocol (build and parse)
//  2. [series] - Sequential execution of a plot series with failure
//     propagation
//  3. [theme] and [config] - Color schemes and the persisted TOML settings
//  4. [errors], [observability] and [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	orbital range + spin selection
//	         ↓
//	    [orbital.Jobs] (ascending index, alpha before beta)
//	         ↓
//	    [orbital.BuildScript] (one script per job)
//	         ↓
//	    [series.Runner] (temp file → orca_plot <input> -i → <script>.log)
//
// # Quick Start
//
//	r, _ := orbital.NewRange(10, 15)
//	runner := series.NewRunner(nil, nil)
//	result, err := runner.Run(ctx, series.Plan{
//	    Range:    r,
//	    Spin:     orbital.SpinBoth,
//	    Grid:     80,
//	    Format:   orbital.FormatCube,
//	    Renderer: "/opt/orca/orca_plot",
//	    Input:    "water.gbw",
//	})
//
// A failed renderer stops the series; the returned error carries the
// RENDERER_FAILED code and the path of the log holding orca_plot's output:
//
//	if errors.Is(err, errors.ErrCodeRendererFailed) { ... }
//
// [orbital]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/orbital
// [series]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/series
// [theme]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/theme
// [config]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/config
// [errors]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/errors
// [observability]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/anselmoo/moplots/pkg/buildinfo
package pkg
