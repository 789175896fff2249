package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/secureweb/secureweb/internal/ui/benchmarks"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderSteps(&b, m)
	renderResources(&b, m)

	if len(m.Warnings) > 0 {
		renderWarnings(&b, m)
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("secureweb: %s (%s)", m.Project, m.Environment)
	if m.Location != "" {
		title += fmt.Sprintf(" @ %s", m.Location)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Done:
		status += readyStyle.Render("Deployed")
	default:
		if name := activeStepName(m); name != "" {
			status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render(name)
		} else {
			status += dimStyle.Render("Starting...")
		}
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := calculateProgress(m)
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * progress)
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	pct := int(progress * 100)
	eta := ""
	if m.EstimatedRemaining > 0 {
		eta = fmt.Sprintf(" ETA %s", formatDuration(m.EstimatedRemaining))
	}
	if m.PerformanceScale != 0 && m.PerformanceScale != 1.0 {
		eta += fmt.Sprintf("  speed x%.2f", m.PerformanceScale)
	}

	fmt.Fprintf(b, "  %s %d%%%s\n", bar, pct, eta)
}

func renderSteps(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Steps"))
	b.WriteString("\n")

	for _, step := range m.Steps {
		var icon string
		var style styleFunc
		switch {
		case step.Failed:
			icon = crossMark
			style = sf(failedStyle)
		case step.Warned:
			icon = warnMark
			style = sf(warningStyle)
		case step.Done:
			icon = checkMark
			style = sf(readyStyle)
		case step.Active:
			icon = currentSpinner(m.SpinnerFrame)
			style = sf(activeStyle)
		default:
			icon = pending
			style = sf(dimStyle)
		}

		dur := ""
		switch {
		case step.finished() && step.Duration > 0:
			dur = formatDuration(step.Duration)
		case step.Active && !step.StartedAt.IsZero():
			dur = formatDuration(time.Since(step.StartedAt))
		}

		bar := ""
		if step.Active && !step.StartedAt.IsZero() {
			if expected, ok := benchmarks.StepExpectedDuration(step.Name); ok {
				scaled := time.Duration(float64(expected) * scaleOrOne(m.PerformanceScale))
				bar = " " + stepMiniBar(float64(time.Since(step.StartedAt))/float64(scaled))
			}
		}

		fmt.Fprintf(b, "    %s %-28s %s%s\n", style(icon), style(step.Name), dimStyle.Render(dur), bar)
	}
}

func renderResources(b *strings.Builder, m Model) {
	if len(m.Resources) == 0 {
		return
	}

	b.WriteString(sectionStyle.Render("  Resources"))
	b.WriteString("\n")

	for _, r := range m.Resources {
		var icon string
		var style styleFunc
		if r.Done {
			icon = checkMark
			style = sf(readyStyle)
		} else {
			icon = currentSpinner(m.SpinnerFrame)
			style = sf(activeStyle)
		}
		fmt.Fprintf(b, "    %s %-22s %s\n", style(icon), style(r.Kind), dimStyle.Render(r.Name))
	}
}

func renderWarnings(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Warnings"))
	b.WriteString("\n")

	// Show the last 3 warnings
	start := 0
	if len(m.Warnings) > 3 {
		start = len(m.Warnings) - 3
	}
	for _, w := range m.Warnings[start:] {
		fmt.Fprintf(b, "    %s %s\n", warningStyle.Render(warnMark), dimStyle.Render(w))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime))
	parts := []string{fmt.Sprintf("elapsed: %s", elapsed)}
	if m.LastLog != "" {
		parts = append(parts, m.LastLog)
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

// Helper functions

func activeStepName(m Model) string {
	for _, s := range m.Steps {
		if s.Active {
			return s.Name
		}
	}
	return ""
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func scaleOrOne(scale float64) float64 {
	if scale <= 0 {
		return 1.0
	}
	return scale
}

func stepMiniBar(progress float64) string {
	const width = 10
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * width)
	if filled > width {
		filled = width
	}
	return progressBarFull.Render(strings.Repeat("█", filled)) + progressBarEmpty.Render(strings.Repeat("░", width-filled))
}

func calculateProgress(m Model) float64 {
	if m.Done {
		return 1.0
	}
	total := float64(benchmarks.TotalEstimate())
	if total == 0 || len(m.Steps) == 0 {
		return 0
	}

	// Weight each step by its expected duration so the bar tracks wall time,
	// not step count.
	var done float64
	for _, s := range m.Steps {
		if !s.finished() {
			continue
		}
		if d, ok := benchmarks.StepExpectedDuration(s.Name); ok {
			done += float64(d)
		}
	}

	progress := done / total
	if progress > 1.0 {
		progress = 1.0
	}
	return progress
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
