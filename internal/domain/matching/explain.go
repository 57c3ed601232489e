package matching

import (
	"fmt"
	"strings"

	"devcollab/internal/domain/profile"
)

// BuildExplanationPrompt assembles the context sent to the text-generation
// collaborator for a scored pair. Both profiles plus the match statistics
// go into a single plain-text prompt.
func BuildExplanationPrompt(a, b profile.Profile, bd Breakdown) string {
	var sb strings.Builder

	sb.WriteString("You are a technical matching expert for a developer collaboration platform. ")
	sb.WriteString("Analyze the following two developer profiles and explain why they would be good collaboration partners. ")
	sb.WriteString("Be concise, professional, and highlight specific technical synergies.\n\n")

	writeProfileSection(&sb, "Developer 1", a)
	writeProfileSection(&sb, "Developer 2", b)

	sb.WriteString("Match Statistics:\n")
	fmt.Fprintf(&sb, "Compatibility Score: %d/100\n", bd.Total)
	fmt.Fprintf(&sb, "Common Skills: %d\n", bd.CommonSkills)
	fmt.Fprintf(&sb, "Common Interests: %d\n\n", bd.CommonInterests)

	sb.WriteString("Generate a brief, engaging explanation (2-3 sentences) of why these developers would make good collaboration partners. ")
	sb.WriteString("Focus on their complementary skills, shared interests, and potential project synergies.")

	return sb.String()
}

func writeProfileSection(sb *strings.Builder, label string, p profile.Profile) {
	fmt.Fprintf(sb, "%s: %s\n", label, p.FullName)
	fmt.Fprintf(sb, "Experience Level: %s\n", orNA(string(p.ExperienceLevel)))
	fmt.Fprintf(sb, "Bio: %s\n", orNA(p.Bio))
	fmt.Fprintf(sb, "Skills: %s\n", strings.Join(p.SkillNames(), ", "))
	fmt.Fprintf(sb, "Interests: %s\n", strings.Join(p.Interests, ", "))
	if p.HoursPerWeek != nil {
		fmt.Fprintf(sb, "Hours per week: %d\n", *p.HoursPerWeek)
	} else {
		sb.WriteString("Hours per week: N/A\n")
	}

	if len(p.RecentProjects) > 0 {
		titles := p.RecentProjects
		if len(titles) > 3 {
			titles = titles[:3]
		}
		fmt.Fprintf(sb, "Projects: %s\n", strings.Join(titles, ", "))
	}

	sb.WriteString("\n")
}

// FallbackExplanation builds a deterministic rule-based explanation used
// whenever the collaborator is unavailable. It never fails: every optional
// field is treated as absent-safe.
func FallbackExplanation(a, b profile.Profile, bd Breakdown) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s and %s have a %d%% compatibility score. ", a.FullName, b.FullName, bd.Total)

	if bd.CommonSkills > 0 {
		fmt.Fprintf(&sb, "They share %d technical skill%s, enabling effective collaboration. ",
			bd.CommonSkills, plural(bd.CommonSkills))
	}

	if bd.CommonInterests > 0 {
		fmt.Fprintf(&sb, "With %d common interest%s, they're likely to work well on similar project types. ",
			bd.CommonInterests, plural(bd.CommonInterests))
	}

	if a.Timezone != nil && b.Timezone != nil && *a.Timezone == *b.Timezone {
		sb.WriteString("Being in the same timezone facilitates real-time collaboration. ")
	}

	if a.HoursPerWeek != nil && b.HoursPerWeek != nil && *a.HoursPerWeek == *b.HoursPerWeek {
		sb.WriteString("Their matching availability ensures consistent project momentum.")
	}

	return strings.TrimSpace(sb.String())
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
