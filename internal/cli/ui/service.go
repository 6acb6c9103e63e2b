package ui

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gofiber/fiber/v2"
)

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
	methodStyle = lipgloss.NewStyle().Bold(true).Width(8)
)

// Service handles terminal output for the CLI
type Service interface {
	// ShowSpinner displays a spinner with a message and returns a stop function
	ShowSpinner(message string) func(completedMessage string)
	// Confirm asks a yes/no question, defaulting to no
	Confirm(question string) (bool, error)

	Title(text string)
	Success(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// RouteTable prints routes grouped by path
	RouteTable(routes []fiber.Route)
}

// service implements Service interface
type service struct {
	in  *bufio.Reader
	out io.Writer
	mu  sync.Mutex
}

// ProvideUIService creates a UI service reading answers from in and writing to out
func ProvideUIService(in io.Reader, out io.Writer) Service {
	return &service{in: bufio.NewReader(in), out: out}
}

// ShowSpinner displays a spinner with a message and returns a stop function
func (s *service) ShowSpinner(message string) func(completedMessage string) {
	spinner := NewSpinner(s.out)
	spinner.Start(message)
	return func(completedMessage string) {
		spinner.Stop(completedMessage)
	}
}

// Confirm asks a yes/no question, defaulting to no
func (s *service) Confirm(question string) (bool, error) {
	s.printf("%s %s ", question, dimStyle.Render("[y/N]"))

	input, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (s *service) Title(text string) {
	s.printf("%s\n", titleStyle.Render(text))
}

func (s *service) Success(format string, args ...any) {
	s.printf("%s %s\n", passStyle.Render("✔"), fmt.Sprintf(format, args...))
}

func (s *service) Info(format string, args ...any) {
	s.printf("%s %s\n", dimStyle.Render("•"), fmt.Sprintf(format, args...))
}

func (s *service) Warn(format string, args ...any) {
	s.printf("%s %s\n", warnStyle.Render("!"), fmt.Sprintf(format, args...))
}

func (s *service) Error(format string, args ...any) {
	s.printf("%s %s\n", failStyle.Render("✘"), fmt.Sprintf(format, args...))
}

// RouteTable prints routes sorted by path, then method
func (s *service) RouteTable(routes []fiber.Route) {
	sorted := make([]fiber.Route, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Method < sorted[j].Method
	})

	var b strings.Builder
	for _, r := range sorted {
		b.WriteString(methodStyle.Render(r.Method))
		b.WriteString(" ")
		b.WriteString(r.Path)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d routes", len(sorted))))
	b.WriteString("\n")

	s.printf("%s", b.String())
}

func (s *service) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

// Spinner handles animated loading indicators
type Spinner struct {
	out      io.Writer
	chars    []string
	delay    time.Duration
	done     chan struct{}
	finished chan struct{}
	mu       sync.Mutex
	started  bool
	stopped  bool
}

func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{
		out:      out,
		chars:    []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		delay:    100 * time.Millisecond,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

func (s *Spinner) Start(message string) {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.finished)

		ticker := time.NewTicker(s.delay)
		defer ticker.Stop()

		for i := 0; ; i++ {
			s.mu.Lock()
			fmt.Fprintf(s.out, "\r%s %s", s.chars[i%len(s.chars)], message)
			s.mu.Unlock()

			select {
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop halts the animation, waits for it to exit and prints message.
// Later calls do nothing.
func (s *Spinner) Stop(message string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	s.mu.Unlock()

	close(s.done)
	if started {
		<-s.finished
	}

	fmt.Fprintf(s.out, "\r%s %s\n", passStyle.Render("✔"), message)
}
