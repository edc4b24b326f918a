// Package ui runs the interactive console session used when the CLI is
// started without a directory argument. It stands in for the desktop UI of
// the original tool: prompt, preview, confirm, execute, repeat.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/esdraskololo/File-Organizer-Tool/internal/locale"
	"github.com/esdraskololo/File-Organizer-Tool/internal/organizer"
	"github.com/esdraskololo/File-Organizer-Tool/internal/output"
	"github.com/esdraskololo/File-Organizer-Tool/internal/planner"
	"github.com/esdraskololo/File-Organizer-Tool/internal/scanner"
)

// PlanRenderer turns a plan into a displayable block of text. The CLI
// injects a table renderer; when nil the session falls back to a plain
// listing.
type PlanRenderer func(plan *planner.Plan) string

// lastApply remembers the single most recent organization so it can be
// reversed within the session. In-memory only; nothing is persisted.
type lastApply struct {
	directory    string
	separator    string
	removePrefix bool
	categories   []string
}

// Session is an interactive organize/reverse loop over injected streams.
type Session struct {
	in         *bufio.Reader
	out        io.Writer
	loc        *locale.Manager
	report     *output.Output
	renderPlan PlanRenderer
	last       *lastApply
}

// New creates a Session reading prompts from in and writing to out.
// Use os.Stdin/os.Stdout for normal operation, or buffers for testing.
func New(in io.Reader, out io.Writer, loc *locale.Manager, report *output.Output, renderPlan PlanRenderer) *Session {
	return &Session{
		in:         bufio.NewReader(in),
		out:        out,
		loc:        loc,
		report:     report,
		renderPlan: renderPlan,
	}
}

// Run drives the session until the user quits or input ends.
func (s *Session) Run() error {
	for {
		choice, err := s.prompt(s.loc.T("prompt_action"))
		if err != nil {
			return nil // EOF ends the session
		}
		switch strings.ToLower(choice) {
		case "o", "":
			s.organize()
		case "r":
			s.reverseLast()
		case "q":
			fmt.Fprintln(s.out, s.loc.T("goodbye"))
			return nil
		}
	}
}

// organize walks one plan-preview-confirm-apply round.
func (s *Session) organize() {
	directory, err := s.prompt(s.loc.T("prompt_directory"))
	if err != nil || directory == "" {
		return
	}

	separator, err := s.prompt(s.loc.T("prompt_separator"))
	if err != nil {
		return
	}
	if separator == "" {
		separator = "-"
	}

	fmt.Fprintln(s.out, s.loc.T("analyzing", locale.String("directory", directory)))

	plan, err := s.buildPlanAsync(directory, separator)
	if err != nil {
		if scanner.IsNotFound(err) {
			fmt.Fprintln(s.out, s.loc.T("invalid_directory"))
		} else {
			s.report.Error("%v", err)
		}
		return
	}
	if plan.TotalFiles() == 0 {
		fmt.Fprintln(s.out, s.loc.T("no_files"))
		return
	}

	fmt.Fprintln(s.out, s.loc.T("found_files",
		locale.String("count", fmt.Sprint(plan.TotalFiles())),
		locale.String("categories", fmt.Sprint(plan.Len()))))
	s.showPlan(plan)

	if !s.confirm(s.loc.T("confirm_organize")) {
		fmt.Fprintln(s.out, s.loc.T("cancelled"))
		return
	}
	removePrefix := s.confirm(s.loc.T("prompt_remove_prefix"))

	result := organizer.Apply(directory, plan, removePrefix, separator)
	fmt.Fprintln(s.out, s.loc.T("organize_summary",
		locale.String("count", fmt.Sprint(result.Moved)),
		locale.String("dirs", fmt.Sprint(result.Categories))))
	s.report.PrintErrors(s.loc, result.Errors)
	fmt.Fprintln(s.out, s.loc.T("organize_done"))

	s.last = &lastApply{
		directory:    directory,
		separator:    separator,
		removePrefix: removePrefix,
		categories:   plan.Categories(),
	}
}

// reverseLast undoes the most recent apply of this session.
func (s *Session) reverseLast() {
	if s.last == nil {
		fmt.Fprintln(s.out, s.loc.T("nothing_to_reverse"))
		return
	}

	fmt.Fprintln(s.out, s.loc.T("scanning_subdirs",
		locale.String("directory", s.last.directory)))

	buckets, err := scanner.ScanBuckets(s.last.directory)
	if err != nil {
		fmt.Fprintln(s.out, s.loc.T("invalid_directory"))
		return
	}

	// Only the buckets this session created are reversed; unrelated
	// subdirectories in the same parent stay untouched.
	owned := make(map[string][]string)
	total := 0
	for _, category := range s.last.categories {
		if files, ok := buckets[category]; ok {
			owned[category] = files
			total += len(files)
		}
	}
	if total == 0 {
		fmt.Fprintln(s.out, s.loc.T("no_bucket_files"))
		s.last = nil
		return
	}

	fmt.Fprintln(s.out, s.loc.T("found_reverse",
		locale.String("count", fmt.Sprint(total)),
		locale.String("dirs", fmt.Sprint(len(owned)))))

	if !s.confirm(s.loc.T("confirm_reverse")) {
		fmt.Fprintln(s.out, s.loc.T("cancelled"))
		return
	}

	result := organizer.Reverse(s.last.directory, owned, s.last.removePrefix, s.last.separator)
	fmt.Fprintln(s.out, s.loc.T("reverse_summary",
		locale.String("count", fmt.Sprint(result.Moved))))
	if result.RemovedDirs > 0 {
		fmt.Fprintln(s.out, s.loc.T("removed_dirs",
			locale.String("count", fmt.Sprint(result.RemovedDirs))))
	}
	s.report.PrintErrors(s.loc, result.Errors)

	// Single most recent reversal only.
	s.last = nil
}

// buildPlanAsync runs the directory scan on a background goroutine so a
// slow disk doesn't wedge the prompt loop, mirroring the worker-thread
// pattern the original UI used. The session still blocks on the result;
// the core itself stays synchronous.
func (s *Session) buildPlanAsync(directory, separator string) (*planner.Plan, error) {
	type outcome struct {
		plan *planner.Plan
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		plan, err := planner.Build(directory, separator)
		ch <- outcome{plan, err}
	}()
	res := <-ch
	return res.plan, res.err
}

// showPlan prints the plan preview via the injected renderer or a plain
// per-category listing.
func (s *Session) showPlan(plan *planner.Plan) {
	if s.renderPlan != nil {
		fmt.Fprintln(s.out, s.renderPlan(plan))
		return
	}
	for _, category := range plan.Categories() {
		files := plan.Files(category)
		fmt.Fprintln(s.out, s.loc.T("category_line",
			locale.String("name", category),
			locale.String("count", fmt.Sprint(len(files)))))
	}
}

// prompt writes a prompt and reads one trimmed line.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but "y" is a no.
func (s *Session) confirm(text string) bool {
	answer, err := s.prompt(text)
	if err != nil {
		return false
	}
	return strings.ToLower(answer) == "y"
}
