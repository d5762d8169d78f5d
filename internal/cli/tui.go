package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reportio "github.com/matzehuels/superperm/pkg/io"
	"github.com/matzehuels/superperm/pkg/perm"
)

var (
	tuiDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	tuiBarStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	tuiDoneStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

// tuiTail is the number of most recent milestones shown in the live view.
const tuiTail = 10

// =============================================================================
// SolveModel - Live view of a running search
// =============================================================================

type (
	tickMsg      time.Time
	milestoneMsg reportio.Milestone
	solveDoneMsg struct {
		report *reportio.Report
		err    error
	}
)

// SolveModel is the bubbletea model for the live solve view.
type SolveModel struct {
	Symbols    int
	Total      int
	Milestones []reportio.Milestone
	Started    time.Time
	Now        time.Time
	Done       bool
	Err        error

	cancel context.CancelFunc
}

// NewSolveModel creates a live view for an n-symbol search. cancel is
// invoked when the user quits.
func NewSolveModel(n int, cancel context.CancelFunc) SolveModel {
	now := time.Now()
	return SolveModel{
		Symbols: n,
		Total:   perm.Factorial(n),
		Started: now,
		Now:     now,
		cancel:  cancel,
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m SolveModel) Init() tea.Cmd {
	return tick()
}

func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case tickMsg:
		if m.Done {
			return m, nil
		}
		m.Now = time.Time(msg)
		return m, tick()
	case milestoneMsg:
		m.Milestones = append(m.Milestones, reportio.Milestone(msg))
	case solveDoneMsg:
		m.Done = true
		m.Err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

// revealed is the number of permutations proven reachable so far.
func (m SolveModel) revealed() int {
	if len(m.Milestones) == 0 {
		return 1
	}
	return m.Milestones[len(m.Milestones)-1].Goal
}

func (m SolveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Minimal superpermutation, n=%d", m.Symbols)))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("q quit"))
	b.WriteString("\n\n")

	b.WriteString(progressBar(m.revealed(), m.Total, 30))
	b.WriteString(fmt.Sprintf(" %d/%d permutations", m.revealed(), m.Total))
	if len(m.Milestones) > 0 {
		b.WriteString(fmt.Sprintf(", distance %d", m.Milestones[len(m.Milestones)-1].Distance))
	}
	b.WriteString(tuiDimStyle.Render(fmt.Sprintf("  %s", m.Now.Sub(m.Started).Truncate(100*time.Millisecond))))
	b.WriteString("\n\n")

	if len(m.Milestones) > 0 {
		b.WriteString(renderTable(milestoneHeaders, milestoneRows(m.Milestones, tuiTail)))
		b.WriteString("\n")
	}

	switch {
	case m.Err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error() + "\n")
	case m.Done:
		b.WriteString(tuiDoneStyle.Render(iconSuccess+" done") + "\n")
	}
	return b.String()
}

// progressBar renders done/total as a bar of the given width.
func progressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return tuiBarStyle.Render(strings.Repeat("█", filled)) + tuiDimStyle.Render(strings.Repeat("░", width-filled))
}

// runSolveTUI runs the search behind the live view. Quitting the view
// cancels the search; the partial report is returned with the error.
func runSolveTUI(ctx context.Context, n int) (*reportio.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewSolveModel(n, cancel))
	result := make(chan solveDoneMsg, 1)

	go func() {
		rep, err := solve(ctx, n, func(m reportio.Milestone) {
			p.Send(milestoneMsg(m))
		})
		done := solveDoneMsg{report: rep, err: err}
		result <- done
		p.Send(done)
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-result
		return nil, fmt.Errorf("live view: %w", err)
	}
	cancel()
	done := <-result
	return done.report, done.err
}
