package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/replica/internal/ui/output"
	"go.trai.ch/replica/internal/ui/style"
)

type printer struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	muted lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := output.Renderer(w)
	return &printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(style.Iris),
		label: r.NewStyle().Foreground(style.Slate),
		good:  r.NewStyle().Foreground(style.Green),
		bad:   r.NewStyle().Foreground(style.Red),
		muted: r.NewStyle().Foreground(style.Slate),
	}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) summary(s *ports.SnapshotSummary) {
	kind := "solution"
	if s.Narrowed {
		kind = "cone"
	}
	p.line("%s %s %s", p.title.Render(style.Running+" "+string(s.Solution)), p.muted.Render(kind), s.Checksum)
	p.line("  %d projects, %d documents", len(s.Projects), s.Documents)

	width := 0
	for _, ps := range s.Projects {
		width = max(width, len(ps.ID))
	}
	for _, ps := range s.Projects {
		row := fmt.Sprintf("  %s %-*s  %s  %3d documents",
			p.good.Render(style.Synced), width, ps.ID, p.muted.Render(ps.Checksum.String()), ps.Documents)
		if len(ps.Refs) > 0 {
			refs := make([]string, len(ps.Refs))
			for i, r := range ps.Refs {
				refs[i] = string(r)
			}
			row += "  " + style.Arrow + " " + strings.Join(refs, ", ")
		}
		p.line("%s", row)
	}
}

func (p *printer) notRunning() {
	p.line("%s %s", p.bad.Render(style.Stopped), "worker not running")
}

func (p *printer) status(st *ports.DaemonStatus) {
	p.line("%s %s", p.good.Render(style.Running), p.title.Render("worker running"))
	rows := [][2]string{
		{"pid", fmt.Sprint(st.PID)},
		{"uptime", st.Uptime.Round(time.Second).String()},
		{"last activity", st.LastActivity.Format(time.RFC3339)},
		{"idle shutdown in", st.IdleRemaining.Round(time.Second).String()},
		{"snapshots", fmt.Sprint(st.Records)},
		{"primary", primaryText(st)},
	}
	for _, r := range rows {
		p.line("  %s %s", p.label.Render(fmt.Sprintf("%-17s", r[0])), r[1])
	}
}

func primaryText(st *ports.DaemonStatus) string {
	if st.Primary.IsNull() {
		return "none"
	}
	return fmt.Sprintf("%s (version %d)", st.Primary, st.AppliedVersion)
}
