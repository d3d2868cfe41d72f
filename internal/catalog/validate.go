package catalog

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a catalog.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more catalog issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims text, fills derived ids and numbers, and validates the catalog.
func Normalize(cat Catalog) (Catalog, error) {
	collector := &issueCollector{}
	if cat.Version == 0 {
		collector.add("version", "is required")
	} else if cat.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cat.Version))
	}
	cat.Title = strings.TrimSpace(cat.Title)
	if len(cat.Subjects) == 0 {
		collector.add("subjects", "must include at least one entry")
	}

	subjectIDs := map[string]struct{}{}
	subjectNames := map[string]struct{}{}
	for i, subject := range cat.Subjects {
		prefix := fmt.Sprintf("subjects[%d]", i)
		subject.ID = strings.TrimSpace(subject.ID)
		subject.Name = strings.TrimSpace(subject.Name)
		subject.Icon = strings.TrimSpace(subject.Icon)
		if subject.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := subjectIDs[subject.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", subject.ID))
		} else {
			subjectIDs[subject.ID] = struct{}{}
		}
		if subject.Name == "" {
			collector.add(prefix+".name", "is required")
		} else if _, exists := subjectNames[strings.ToLower(subject.Name)]; exists {
			collector.add(prefix+".name", fmt.Sprintf("duplicate name %q", subject.Name))
		} else {
			subjectNames[strings.ToLower(subject.Name)] = struct{}{}
		}
		if len(subject.Questions) == 0 {
			collector.add(prefix+".questions", "must include at least one entry")
		}
		subject.Questions = normalizeQuestions(collector, prefix, subject.ID, subject.Questions)
		cat.Subjects[i] = subject
	}

	if err := collector.result(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

func normalizeQuestions(collector *issueCollector, prefix, subjectID string, questions []Question) []Question {
	seenIDs := map[string]struct{}{}
	for i, question := range questions {
		field := fmt.Sprintf("%s.questions[%d]", prefix, i)
		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			question.ID = fmt.Sprintf("%s%d", subjectID, i+1)
		}
		if _, exists := seenIDs[question.ID]; exists {
			collector.add(field+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}
		if question.Number == 0 {
			question.Number = i + 1
		} else if question.Number < 0 {
			collector.add(field+".number", "must be positive")
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(field+".question", "is required")
		}
		question.Answer = strings.TrimSpace(question.Answer)
		question.Options = normalizeStringSlice(question.Options)
		switch {
		case len(question.Options) == 0:
			if question.CorrectOption != nil {
				collector.add(field+".correct_option", "requires options")
			}
			if question.Answer == "" {
				collector.add(field+".answer", "is required for free-text questions")
			}
		case len(question.Options) < 2:
			collector.add(field+".options", "must include at least two entries")
		case len(question.Options) > MaxOptions:
			collector.add(field+".options", fmt.Sprintf("must include at most %d entries", MaxOptions))
		default:
			for optionIndex, option := range question.Options {
				if option == "" {
					collector.add(fmt.Sprintf("%s.options[%d]", field, optionIndex), "is required")
				}
			}
			if question.CorrectOption == nil {
				question.CorrectOption = matchingOption(question.Options, question.Answer)
			}
			if question.CorrectOption != nil {
				if *question.CorrectOption < 0 || *question.CorrectOption >= len(question.Options) {
					collector.add(field+".correct_option", fmt.Sprintf("index %d out of range", *question.CorrectOption))
				}
			} else if question.Answer == "" {
				collector.add(field+".correct_option", "is required when no answer is given")
			}
		}
		questions[i] = question
	}
	return questions
}

// matchingOption finds the option that spells out answer, ignoring case.
func matchingOption(options []string, answer string) *int {
	if answer == "" {
		return nil
	}
	for i, option := range options {
		if strings.EqualFold(option, answer) {
			return &i
		}
	}
	return nil
}

func normalizeStringSlice(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
