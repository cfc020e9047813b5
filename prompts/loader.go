package prompts

import (
	_ "embed"
	"strings"
)

//go:embed critical_analysis.txt
var CriticalAnalysis string

//go:embed system.txt
var System string

// SectionHeaders are the fixed sections every report is asked to contain, in order.
var SectionHeaders = []string{
	"### Core Claims",
	"### Language & Tone Analysis",
	"### Potential Red Flags",
	"### Key Entities to Investigate",
	"### Verification Questions",
	"### Counter-Argument Simulation",
}

// RenderCriticalAnalysis fills the {title} and {text} placeholders verbatim.
// Substitution is a single pass over the template, so placeholder-like text
// inside title or text is left alone.
func RenderCriticalAnalysis(title, text string) string {
	return strings.NewReplacer("{title}", title, "{text}", text).Replace(CriticalAnalysis)
}
