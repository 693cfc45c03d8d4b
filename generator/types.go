package generator

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Request is one component to create.
type Request struct {
	Name      string
	Selection string
	// Origin describes where the selection came from, for logging only.
	Origin string
}

// Result describes a created (or, in dry-run mode, rendered) component.
type Result struct {
	Name        string
	Path        string
	Source      string
	UtilCreated bool
	DryRun      bool
}

type GenerationResult struct {
	ComponentsCreated int
	ComponentsSkipped int
	HelpersCreated    int
	Errors            int
	startTime         time.Time
}

func (r GenerationResult) Add(other GenerationResult) GenerationResult {
	return GenerationResult{
		ComponentsCreated: r.ComponentsCreated + other.ComponentsCreated,
		ComponentsSkipped: r.ComponentsSkipped + other.ComponentsSkipped,
		HelpersCreated:    r.HelpersCreated + other.HelpersCreated,
		Errors:            r.Errors + other.Errors,
		startTime:         r.startTime,
	}
}

// Record folds the outcome of one Create call into the counters. Existing
// targets count as skipped, not as errors.
func (r *GenerationResult) Record(res *Result, err error) {
	switch {
	case err == nil:
		r.ComponentsCreated++
		if res != nil && res.UtilCreated {
			r.HelpersCreated++
		}
	case errors.Is(err, ErrFileExists):
		r.ComponentsSkipped++
	default:
		r.Errors++
	}
}

func (r *GenerationResult) SetStartTime(t time.Time) {
	r.startTime = t
}

func (r GenerationResult) PrintSummary(w io.Writer) {
	duration := time.Since(r.startTime)

	pastelMagenta := color.RGB(255, 182, 193).SprintFunc()
	pastelBlue := color.RGB(173, 216, 230).SprintFunc()
	pastelGreen := color.RGB(152, 251, 152).SprintFunc()
	pastelRed := color.RGB(255, 160, 160).SprintFunc()
	pastelYellow := color.RGB(255, 255, 224).SprintFunc()

	fmt.Fprintf(w, "\n%s\n\n", pastelMagenta("Extraction Complete!"))
	fmt.Fprintf(w, "Components created:   %s\n", pastelGreen(r.ComponentsCreated))
	fmt.Fprintf(w, "Components skipped:   %s\n", pastelBlue(r.ComponentsSkipped))
	fmt.Fprintf(w, "Helpers created:      %s\n", pastelGreen(r.HelpersCreated))

	if r.Errors > 0 {
		fmt.Fprintf(w, "Errors:               %s\n", pastelRed(r.Errors))
	} else {
		fmt.Fprintf(w, "Errors:               %s\n", pastelGreen(0))
	}

	if !r.startTime.IsZero() {
		fmt.Fprintf(w, "Duration:             %s\n", pastelYellow(duration.Round(time.Millisecond)))
	}
}

// PrintWarning writes a highlighted warning line, used for skipped targets.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, color.YellowString("warning: %s", msg))
}
