// Package series runs a plot series through orca_plot, one job at a time.
//
// # Overview
//
// A [Plan] names the orbital range, spin selection, grid and output format
// together with the renderer executable and the ORCA orbital file. The
// [Runner] expands the plan with [orbital.Jobs] and, for every job:
//
//  1. Builds the command script with [orbital.BuildScript]
//  2. Writes it to a fresh temporary file (moplots-mo<idx>-<spin>-*.inp)
//  3. Starts "<renderer> <input> -i" with the script on stdin and stdout
//     and stderr captured in "<script>.log"
//  4. Waits for the process and stops the whole run on the first failure
//
// Jobs never overlap. Script and log files are left on disk in every case
// so a failed render can be inspected afterwards.
//
// # Launchers
//
// Process handling sits behind the [Launcher] interface. [ExecLauncher]
// uses os/exec; tests substitute a fake to simulate renderer exit codes.
//
//	runner := series.NewRunner(series.ExecLauncher{}, logger)
//	runner.Progress = func(done, total int, job orbital.Job) { ... }
//	result, err := runner.Run(ctx, plan)
package series
