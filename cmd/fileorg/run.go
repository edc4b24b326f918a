package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/esdraskololo/File-Organizer-Tool/internal/config"
	"github.com/esdraskololo/File-Organizer-Tool/internal/locale"
	"github.com/esdraskololo/File-Organizer-Tool/internal/organizer"
	"github.com/esdraskololo/File-Organizer-Tool/internal/output"
	"github.com/esdraskololo/File-Organizer-Tool/internal/planner"
	"github.com/esdraskololo/File-Organizer-Tool/internal/scanner"
)

// maxVerboseFiles caps how many files are listed per category in verbose mode.
const maxVerboseFiles = 5

// interruptSignal delivers os.Interrupt to the watch loop. A variable so
// tests can substitute a pre-filled channel.
var interruptSignal = func() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}

// run dispatches one non-interactive invocation.
func run(directory string, opts *options, prefs *config.Preferences, loc *locale.Manager, out *output.Output) error {
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		out.Error("%s", loc.T("dir_not_found", locale.String("directory", directory)))
		return errOperationFailed
	}

	if opts.reverse {
		return runReverse(directory, opts, loc, out)
	}
	if opts.watch {
		// Watch mode keeps running even when the initial pass found
		// nothing to organize or organized nothing.
		if err := runOrganize(directory, opts, prefs, loc, out); err != nil && err != errOperationFailed {
			return err
		}
		return runWatch(directory, opts, prefs, loc, out)
	}
	return runOrganize(directory, opts, prefs, loc, out)
}

// runOrganize plans, previews, confirms and applies a forward organization.
func runOrganize(directory string, opts *options, prefs *config.Preferences, loc *locale.Manager, out *output.Output) error {
	out.Info("%s", loc.T("analyzing", locale.String("directory", directory)))

	plan, err := planner.Build(directory, opts.separator)
	if err != nil {
		if scanner.IsNotFound(err) {
			out.Error("%s", loc.T("dir_not_found", locale.String("directory", directory)))
			return errOperationFailed
		}
		return err
	}

	fileCount := plan.TotalFiles()
	if fileCount == 0 {
		out.Info("%s", loc.T("no_files"))
		return errOperationFailed
	}

	out.Info("%s", loc.T("found_files",
		locale.String("count", fmt.Sprint(fileCount)),
		locale.String("categories", fmt.Sprint(plan.Len()))))

	if out.IsTTY() && !out.IsVerbose() {
		out.Info("%s", renderPlanTable(plan))
	}
	if out.IsVerbose() {
		printPlanDetails(plan, opts, loc, out)
	}

	if !opts.assumeYes && !confirm(loc.T("confirm_organize")) {
		out.Info("%s", loc.T("cancelled"))
		return nil
	}

	result := organizer.Apply(directory, plan, opts.removePrefix, opts.separator)
	out.Info("%s", loc.T("organize_summary",
		locale.String("count", fmt.Sprint(result.Moved)),
		locale.String("dirs", fmt.Sprint(result.Categories))))
	out.PrintErrors(loc, result.Errors)

	if len(result.Errors) >= fileCount && result.Moved == 0 {
		return errOperationFailed
	}
	return nil
}

// runReverse scans the bucket subdirectories and moves their files back.
func runReverse(directory string, opts *options, loc *locale.Manager, out *output.Output) error {
	out.Info("%s", loc.T("scanning_subdirs", locale.String("directory", directory)))

	buckets, err := scanner.ScanBuckets(directory)
	if err != nil {
		if scanner.IsNotFound(err) {
			out.Error("%s", loc.T("dir_not_found", locale.String("directory", directory)))
			return errOperationFailed
		}
		return err
	}
	if len(buckets) == 0 {
		out.Info("%s", loc.T("no_subdirs"))
		return errOperationFailed
	}

	total := 0
	for _, files := range buckets {
		total += len(files)
	}
	out.Info("%s", loc.T("found_reverse",
		locale.String("count", fmt.Sprint(total)),
		locale.String("dirs", fmt.Sprint(len(buckets)))))

	if out.IsTTY() {
		out.Info("%s", renderBucketTable(buckets))
	}

	if !opts.assumeYes && !confirm(loc.T("confirm_reverse")) {
		out.Info("%s", loc.T("cancelled"))
		return nil
	}

	result := organizer.Reverse(directory, buckets, opts.removePrefix, opts.separator)
	out.Info("%s", loc.T("reverse_summary", locale.String("count", fmt.Sprint(result.Moved))))
	if result.RemovedDirs > 0 {
		out.Info("%s", loc.T("removed_dirs", locale.String("count", fmt.Sprint(result.RemovedDirs))))
	}
	out.PrintErrors(loc, result.Errors)

	if len(result.Errors) >= total && result.Moved == 0 {
		return errOperationFailed
	}
	return nil
}

// runWatch keeps organizing newly arriving files until interrupted.
func runWatch(directory string, opts *options, prefs *config.Preferences, loc *locale.Manager, out *output.Output) error {
	handler := func(path string) error {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("not a regular file: %s", path)
		}
		name := info.Name()
		result := organizer.Apply(directory, planner.Single(name, opts.separator), opts.removePrefix, opts.separator)
		if result.Moved == 0 {
			if len(result.Errors) > 0 {
				out.Verbose("watch: %s", result.Errors[0])
			}
			return fmt.Errorf("could not organize %s", name)
		}
		out.Verbose("watch: organized %s", name)
		return nil
	}

	w := newDirectoryWatcher(prefs, handler)
	if err := w.Start(directory); err != nil {
		return err
	}
	out.Info("%s", loc.T("watch_started", locale.String("directory", directory)))

	<-interruptSignal()

	summary := w.Stop()
	out.Info("%s", loc.T("watch_summary",
		locale.String("organized", fmt.Sprint(summary.Organized)),
		locale.String("skipped", fmt.Sprint(summary.Skipped)),
		locale.String("duration", summary.Duration.Round(printDurationUnit).String())))
	return nil
}

// printPlanDetails lists each category with its first files, showing the
// post-strip destination names when prefix removal is requested.
func printPlanDetails(plan *planner.Plan, opts *options, loc *locale.Manager, out *output.Output) {
	for _, category := range plan.Categories() {
		files := plan.Files(category)
		out.Info("")
		out.Info("%s", loc.T("category_line",
			locale.String("name", category),
			locale.String("count", fmt.Sprint(len(files)))))
		for i, file := range files {
			if i == maxVerboseFiles {
				out.Info("  %s", loc.T("more_files",
					locale.String("count", fmt.Sprint(len(files)-maxVerboseFiles))))
				break
			}
			if opts.removePrefix {
				if stripped, ok := planner.StrippedName(file, opts.separator); ok {
					out.Info("  %s -> %s", file, stripped)
					continue
				}
			}
			out.Info("  %s", file)
		}
	}
	out.Info("")
}

// confirm reads a y/n answer from stdin; anything but "y" is a no.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
