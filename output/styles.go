// Package output provides terminal rendering for requests: lipgloss styles
// for list and detail views, the browser opener, and the interactive picker.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/criteo/git-review/scm"
)

// Color constants - Dracula theme
const (
	colorComment = "#6272a4"
	colorCyan    = "#8be9fd"
	colorGreen   = "#50fa7b"
	colorPink    = "#ff79c6"
	colorPurple  = "#bd93f9"
	colorYellow  = "#f1fa8c"
)

// Style names accepted by the --style flag.
const (
	StylePlain = "plain"
	StyleColor = "color"
)

// AvailableStyles lists the valid values for the --style flag.
var AvailableStyles = []string{StylePlain, StyleColor}

// Styles renders requests for terminal display.
type Styles struct {
	number lipgloss.Style
	title  lipgloss.Style
	meta   lipgloss.Style
	branch lipgloss.Style
	header lipgloss.Style
}

// NewStyles builds the render styles for the given style name. Any name
// other than "color" produces unstyled output.
func NewStyles(name string) Styles {
	if name != StyleColor {
		return Styles{
			number: lipgloss.NewStyle(),
			title:  lipgloss.NewStyle(),
			meta:   lipgloss.NewStyle(),
			branch: lipgloss.NewStyle(),
			header: lipgloss.NewStyle(),
		}
	}

	return Styles{
		number: color(colorPurple).Bold(true),
		title:  color(colorCyan),
		meta:   color(colorComment),
		branch: color(colorGreen),
		header: color(colorPink).Bold(true),
	}
}

// RequestLine renders one request as a single list line.
func (s Styles) RequestLine(req *scm.Request) string {
	comments := req.Comments + req.ReviewComments

	return fmt.Sprintf("%s  %s  %s",
		s.number.Render(fmt.Sprintf("#%d", req.Number)),
		s.title.Render(req.Title),
		s.meta.Render(fmt.Sprintf("(%d comments, %s)", comments, req.CreatedAt.Format("02-Jan"))),
	)
}

// RequestDetail renders the full detail view of a request.
func (s Styles) RequestDetail(req *scm.Request, comments int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		s.number.Render(fmt.Sprintf("#%d", req.Number)),
		s.title.Render(req.Title),
	)
	fmt.Fprintf(&b, "%s %s -> %s\n",
		s.meta.Render("branch:"),
		s.branch.Render(req.SourceRepo.String()+":"+req.SourceBranch),
		s.branch.Render(req.TargetRepo.String()+":"+req.TargetBranch),
	)
	fmt.Fprintf(&b, "%s %s\n", s.meta.Render("state:"), req.State)
	fmt.Fprintf(&b, "%s %d\n", s.meta.Render("comments:"), comments)
	fmt.Fprintf(&b, "%s %s\n", s.meta.Render("created:"), req.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "%s %s\n", s.meta.Render("updated:"), req.UpdatedAt.Format("2006-01-02 15:04"))

	if req.Body != "" {
		fmt.Fprintf(&b, "\n%s\n", req.Body)
	}

	return b.String()
}

// Header renders a section header.
func (s Styles) Header(text string) string {
	return s.header.Render(text)
}

// create a common style with the given foreground color
func color(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}
