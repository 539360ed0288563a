package narrative

import (
	"fmt"
	"strconv"
	"strings"
)

const systemPrompt = "You are an experienced engineering manager writing a performance evaluation. Be specific, constructive, and professional in your feedback."

var instructions = []string{
	"Summarizes overall performance",
	"Highlights key strengths",
	"Identifies areas for improvement",
	"Provides specific examples from the evaluation",
	"Maintains a professional and constructive tone",
	"Includes specific recommendations for growth",
}

// Prompt renders the user message for req.
func Prompt(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a professional performance evaluation write-up for %s, a %s in the %s department.\n",
		req.EngineerName, req.Role, req.Department)
	sb.WriteString("Based on the following evaluation scores:\n\n")
	for _, s := range req.Scores {
		fmt.Fprintf(&sb, "%s: %s/5\n", s.Criterion, strconv.FormatFloat(s.Score, 'f', -1, 64))
	}
	sb.WriteString("\nPlease provide a comprehensive write-up that:\n")
	for i, line := range instructions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, line)
	}
	sb.WriteString("\nFormat the response in a clear, structured manner with appropriate sections.")
	return sb.String()
}
