// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTitle = lipgloss.Color("#8B5CF6")
	colorValue = lipgloss.Color("#10B981")
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(colorValue)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

// printResult writes a styled title line followed by the value.
func printResult(w io.Writer, title string, value fmt.Stringer) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, valueStyle.Render(value.String()))
}

// printNote writes a muted line, used for "no result" outcomes.
func printNote(w io.Writer, note string) {
	fmt.Fprintln(w, mutedStyle.Render(note))
}

// text adapts a plain string to fmt.Stringer.
type text string

func (t text) String() string { return string(t) }
