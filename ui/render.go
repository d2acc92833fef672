// Package ui holds plain-text renderings of the visual components:
// progress bars, course cards, material rows. No state, no logic.
package ui

import (
	"fmt"
	"strings"

	"github.com/meharahmadft6/educonnect/models"
)

// ProgressBar renders a fixed-width bar like [####------] 40% Complete
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	return fmt.Sprintf("[%s%s] %d%% Complete",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		percent)
}

// CourseCard renders one catalog entry
func CourseCard(index int, course models.Course, enrolling bool) string {
	status := "new"
	switch {
	case enrolling:
		status = "enrolling..."
	case course.Enrolled && course.Progress == 100:
		status = "completed"
	case course.Enrolled:
		status = fmt.Sprintf("enrolled, %d%%", course.Progress)
	}

	var teachers []string
	for _, t := range course.Teachers {
		teachers = append(teachers, t.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%2d. %s [%s]\n", index, course.Title, status)
	fmt.Fprintf(&b, "    %s\n", course.Description)
	fmt.Fprintf(&b, "    %s | %d weeks | %s", course.Level, course.Duration, strings.Join(teachers, ", "))
	return b.String()
}

// MaterialRow renders one entry of the course content list
func MaterialRow(index int, m models.Material, completed, current bool) string {
	marker := " "
	if completed {
		marker = "x"
	}
	pointer := "  "
	if current {
		pointer = "> "
	}
	return fmt.Sprintf("%s[%s] %2d. %-28s (%s)", pointer, marker, index, m.Title, m.Type)
}

// MaterialBody renders the content area for the current material
func MaterialBody(m *models.Material) string {
	if m == nil {
		return "This course has no materials yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== %s (%s) ===\n", m.Title, m.Type)
	switch m.Type {
	case models.MaterialVideo:
		fmt.Fprintf(&b, "Watch: %s", m.Content)
	case models.MaterialPDF:
		fmt.Fprintf(&b, "Open: %s", m.Content)
	case models.MaterialText:
		b.WriteString(stripTags(m.Content))
	case models.MaterialQuiz:
		b.WriteString("Quiz: answer every question, then submit.")
	}
	return b.String()
}

// QuizQuestion renders one question with its options and the current
// selection, if any
func QuizQuestion(index int, q models.Question, selected int, hasSelection bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d: %s\n", index+1, q.Question)
	for i, opt := range q.Options {
		marker := "( )"
		if hasSelection && selected == i {
			marker = "(*)"
		}
		fmt.Fprintf(&b, "  %s %d. %s\n", marker, i+1, opt)
	}
	return b.String()
}

// stripTags flattens the HTML bodies of text materials well enough for
// a terminal
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			if inTag {
				inTag = false
				b.WriteRune(' ')
			}
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
