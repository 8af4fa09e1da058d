package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}).Bold(true)
	ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	})
	errorStyle = failStyle
)

// isInteractive reports whether stdout is a terminal and the config
// has not disabled color, used to decide whether deduction trees get
// lipgloss styling or plain text.
func isInteractive() bool {
	if colorDisabled {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderDeductionTree pretty-prints a DeductionNode as an indented
// proof tree, one line per step.
func renderDeductionTree(node *logic.DeductionNode) string {
	var b strings.Builder
	renderNode(&b, node, 0)
	return b.String()
}

func renderNode(b *strings.Builder, node *logic.DeductionNode, depth int) {
	indent := strings.Repeat("  ", depth)
	rule := node.Deduction.Rule.String()
	if isInteractive() {
		rule = ruleStyle.Render(rule)
	}
	fmt.Fprintf(b, "%s[%s] %s\n", indent, rule, node.Deduction.Produced)
	for _, child := range node.Children {
		renderNode(b, child, depth+1)
	}
}

func renderReached(ok bool) string {
	if !isInteractive() {
		if ok {
			return "reached"
		}
		return "not reached"
	}
	if ok {
		return passStyle.Render("reached")
	}
	return failStyle.Render("not reached")
}
