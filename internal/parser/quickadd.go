package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedDraft holds what quick-add syntax extracted from a task title.
type ParsedDraft struct {
	Title            string
	Priority         int
	EstimatedMinutes int
	DueDate          *time.Time
	Errors           []string
}

var (
	priorityRegex = regexp.MustCompile(`(^|\s)\+([1-5])(\s|$)`)
	estimateRegex = regexp.MustCompile(`(^|\s)est:(\d+)m?(\s|$)`)
	dueRegex      = regexp.MustCompile(`(^|\s)due:(\S+)(\s|$)`)
)

// ParseQuickAdd extracts inline metadata from a task title.
// Syntax: "Write report +2 est:45 due:15/12/2026"
//   - +N     priority 1 (highest) to 5 (lowest)
//   - est:N  estimated minutes
//   - due:X  due date (compact forms only, e.g. due:3days or due:15/12/2026)
func ParseQuickAdd(input string) ParsedDraft {
	result := ParsedDraft{
		Errors: []string{},
	}

	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 2 {
		result.Priority, _ = strconv.Atoi(matches[2])
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	if matches := estimateRegex.FindStringSubmatch(input); len(matches) > 2 {
		minutes, err := strconv.Atoi(matches[2])
		if err != nil || minutes < 1 {
			result.Errors = append(result.Errors, "invalid estimate: "+matches[2])
		} else {
			result.EstimatedMinutes = minutes
		}
		input = estimateRegex.ReplaceAllString(input, " ")
	}

	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 2 {
		due, err := ParseDueDate(expandCompactDue(matches[2]))
		if err != nil {
			result.Errors = append(result.Errors, "invalid due date: "+matches[2])
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	result.Title = strings.Join(strings.Fields(input), " ")
	return result
}

// expandCompactDue turns "3days" into "3 days" so the due parser accepts it.
func expandCompactDue(input string) string {
	compact := regexp.MustCompile(`^(\d+)(hour|hours|day|days|week|weeks)$`)
	if matches := compact.FindStringSubmatch(input); len(matches) == 3 {
		return matches[1] + " " + matches[2]
	}
	return input
}
