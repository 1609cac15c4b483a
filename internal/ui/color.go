package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	enumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	paramStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func WarnLine(w io.Writer, location, msg string) {
	fmt.Fprintln(w, warnStyle.Render("warn")+" "+location+": "+msg)
}

func EnumLine(w io.Writer, typeName string) {
	fmt.Fprintln(w, enumStyle.Render("enum")+" "+typeName)
}

func StepLine(w io.Writer, phrase string) {
	fmt.Fprintln(w, phrase)
}

func ParamLine(w io.Writer, name, kind string) {
	fmt.Fprintln(w, paramStyle.Render("  "+name+" "+kind))
}

func SummaryLine(w io.Writer, files, steps int) {
	fmt.Fprintf(w, "scanned %d files, %d steps\n", files, steps)
}
