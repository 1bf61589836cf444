package terminal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// activity represents a single logged step.
type activity struct {
	text string
	done bool
}

// Progress renders a titled step counter with a spinner, a progress bar and
// the most recent steps. Without a terminal each step is printed as a plain
// line instead.
type Progress struct {
	mu          sync.Mutex
	title       string
	total       int
	completed   int
	activities  []activity
	running     bool
	done        chan struct{}
	stopped     chan struct{}
	startedAt   time.Time
	width       int
	interactive bool
}

const (
	maxActivities = 4
	progressRows  = maxActivities + 1
	defaultWidth  = 80
)

// NewProgress creates a progress display for total steps on a terminal
// width columns wide (80 when width is not positive). interactive selects the
// redrawing renderer.
func NewProgress(title string, total, width int, interactive bool) *Progress {
	if width <= 0 {
		width = defaultWidth
	}
	return &Progress{
		title:       title,
		total:       total,
		width:       width,
		startedAt:   time.Now(),
		interactive: interactive,
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

// Start begins the rendering loop.
func (p *Progress) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	if p.interactive {
		go p.renderLoop()
	}
}

// Step marks the previous step done and starts a new one.
func (p *Progress) Step(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.activities); n > 0 && !p.activities[n-1].done {
		p.activities[n-1].done = true
		p.completed++
	}
	p.activities = append(p.activities, activity{text: text})
	if !p.interactive {
		fmt.Fprintf(Output, "  • %s\n", text)
	}
	if len(p.activities) > maxActivities {
		p.activities = p.activities[len(p.activities)-maxActivities:]
	}
}

// Stop waits for the last frame and clears the display area.
func (p *Progress) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	if n := len(p.activities); n > 0 && !p.activities[n-1].done {
		p.activities[n-1].done = true
		p.completed++
	}
	p.mu.Unlock()

	if p.interactive {
		close(p.done)
		<-p.stopped
		p.clearDisplay()
	}
}

// StopWithSuccess stops and prints a success message.
func (p *Progress) StopWithSuccess(msg string) {
	p.Stop()
	Success(msg)
}

func (p *Progress) renderLoop() {
	defer close(p.stopped)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	frame := 0
	for {
		p.render(frame)
		frame++
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}
	}
}

func (p *Progress) render(frame int) {
	p.mu.Lock()
	activities := append([]activity(nil), p.activities...)
	completed := p.completed
	elapsed := time.Since(p.startedAt)
	p.mu.Unlock()

	spin := spinnerFrames[frame%len(spinnerFrames)]
	lines := []string{p.header(spin, completed, elapsed)}
	for i, act := range activities {
		prefix := "  ├─ "
		if i == len(activities)-1 {
			prefix = "  └─ "
		}
		marker := Style(spin, Cyan)
		if act.done {
			marker = Style("✓", Green)
		}
		lines = append(lines, Style(prefix, Dim)+marker+" "+act.text)
	}
	// Fixed height avoids flicker.
	for len(lines) < progressRows {
		lines = append(lines, "")
	}

	if frame > 0 {
		fmt.Fprintf(Output, "\033[%dA", progressRows)
	}
	for _, line := range lines {
		fmt.Fprintf(Output, "\r\033[K%s\n", fitRow(line, p.width))
	}
}

// fitRow cuts a styled row short of the last column so it never wraps and
// the area keeps exactly progressRows rows.
func fitRow(s string, width int) string {
	limit := width - 1
	if limit < 1 {
		limit = 1
	}
	if ansi.StringWidth(s) <= limit {
		return s
	}
	return ansi.Truncate(s, limit, "…")
}

func (p *Progress) header(spin string, completed int, elapsed time.Duration) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(Style(spin+" "+p.title+"...", Cyan))
	if p.total > 0 {
		sb.WriteString("  ")
		sb.WriteString(progressBar(completed, p.total))
		sb.WriteString(Style(fmt.Sprintf(" %d/%d", completed, p.total), Dim))
	}
	sb.WriteString("  ")
	sb.WriteString(Style(formatElapsed(elapsed), Dim))
	return sb.String()
}

// formatElapsed formats a duration as a compact time string.
func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	m := s / 60
	s = s % 60
	return fmt.Sprintf("%dm%02ds", m, s)
}

func (p *Progress) clearDisplay() {
	fmt.Fprintf(Output, "\033[%dA", progressRows)
	for i := 0; i < progressRows; i++ {
		fmt.Fprint(Output, "\r\033[K\n")
	}
	fmt.Fprintf(Output, "\033[%dA", progressRows)
}

func progressBar(current, total int) string {
	if total <= 0 {
		return ""
	}
	width := 16
	filled := (current * width) / total
	if filled > width {
		filled = width
	}
	return Style("["+strings.Repeat("█", filled)+strings.Repeat("░", width-filled)+"]", Dim)
}
