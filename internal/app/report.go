package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/ui/output"
	"go.trai.ch/forge/internal/ui/style"
)

// Report renders command results for humans.
type Report struct {
	out *termenv.Output
}

// NewReport creates a Report writing to w.
func NewReport(w io.Writer) *Report {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)
	return &Report{out: out}
}

// Requests renders one line per completed request followed by a summary line.
func (r *Report) Requests(reqs []domain.CompilationRequest) error {
	width := 0
	for i := range reqs {
		width = max(width, len(reqs[i].ResourceID.String()))
	}

	var b strings.Builder
	var compiled, upToDate, failed int
	for i := range reqs {
		req := &reqs[i]
		name := req.ResourceID.String()
		pad := padding(width, name)

		switch req.Status {
		case domain.StatusSucceeded:
			compiled++
			b.WriteString(style.Succeeded.Render(style.Check+" "+name) + pad +
				fmt.Sprintf("compiled in %s", req.CompilationDuration().Round(time.Millisecond)))
		case domain.StatusUpToDate:
			upToDate++
			b.WriteString(style.UpToDate.Render(style.Tilde+" "+name) + pad + "up to date")
		default:
			failed++
			b.WriteString(style.Failed.Render(style.Cross+" "+name) + pad + lastLine(req.Log))
		}
		b.WriteByte('\n')
	}

	b.WriteString(style.Heading.Render(fmt.Sprintf(
		"%d requests: %d compiled, %d up to date, %d failed",
		len(reqs), compiled, upToDate, failed,
	)))
	b.WriteByte('\n')

	_, err := r.out.WriteString(b.String())
	return err
}

// Responses renders the answers a running server sent for a client's requests.
func (r *Report) Responses(msgs []domain.ResourceNotification) error {
	width := 0
	for _, m := range msgs {
		width = max(width, len(m.ResourceID))
	}

	var b strings.Builder
	for _, m := range msgs {
		pad := padding(width, m.ResourceID)
		if m.FilePath == "" {
			b.WriteString(style.Failed.Render(style.Cross+" "+m.ResourceID) + pad + "failed")
		} else {
			b.WriteString(style.Succeeded.Render(style.Check+" "+m.ResourceID) + pad + m.FilePath)
		}
		b.WriteByte('\n')
	}

	_, err := r.out.WriteString(b.String())
	return err
}

// Maps renders the available maps, marking the ones selected for packaging.
func (r *Report) Maps(available, selected []domain.ResourceID) error {
	picked := make(map[domain.ResourceID]bool, len(selected))
	for _, id := range selected {
		picked[id] = true
	}

	var b strings.Builder
	b.WriteString(style.Heading.Render(fmt.Sprintf("%d maps", len(available))))
	b.WriteByte('\n')
	for _, id := range available {
		if picked[id] {
			b.WriteString(style.Succeeded.Render(style.Dot) + " " + id.String())
		} else {
			b.WriteString(style.UpToDate.Render(style.Circle) + " " + id.String())
		}
		b.WriteByte('\n')
	}

	_, err := r.out.WriteString(b.String())
	return err
}

// padding aligns the text following name to two columns past width.
func padding(width int, name string) string {
	return strings.Repeat(" ", width-len(name)+2)
}

func lastLine(log string) string {
	log = strings.TrimRight(log, "\n")
	if i := strings.LastIndexByte(log, '\n'); i >= 0 {
		return log[i+1:]
	}
	return log
}
