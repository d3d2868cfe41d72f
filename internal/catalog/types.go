package catalog

// Catalog is the static set of subjects played in a carnival.
type Catalog struct {
	Version  int       `json:"version" yaml:"version"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Subjects []Subject `json:"subjects" yaml:"subjects"`
}

// Subject is a quiz category with an ordered list of questions.
type Subject struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Icon      string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single prompt on a subject board.
type Question struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Number        int      `json:"number,omitempty" yaml:"number,omitempty"`
	Prompt        string   `json:"question" yaml:"question"`
	Options       []string `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectOption *int     `json:"correct_option,omitempty" yaml:"correct_option,omitempty"`
	Answer        string   `json:"answer,omitempty" yaml:"answer,omitempty"`
}

// Subject returns the subject with the given id.
func (c Catalog) Subject(id string) (Subject, bool) {
	for _, subject := range c.Subjects {
		if subject.ID == id {
			return subject, true
		}
	}
	return Subject{}, false
}

// TotalQuestions counts questions across all subjects.
func (c Catalog) TotalQuestions() int {
	total := 0
	for _, subject := range c.Subjects {
		total += len(subject.Questions)
	}
	return total
}

// Len returns the number of questions on the subject board.
func (s Subject) Len() int {
	return len(s.Questions)
}

// Question returns the question with the given id.
func (s Subject) Question(id string) (Question, bool) {
	for _, question := range s.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// HasOptions reports whether the question is multiple choice.
func (q Question) HasOptions() bool {
	return len(q.Options) > 0
}

// IsCorrect reports whether option is the correct choice.
func (q Question) IsCorrect(option int) bool {
	return q.CorrectOption != nil && *q.CorrectOption == option
}

// CorrectLabel returns the letter of the correct choice, or "" for free-text questions.
func (q Question) CorrectLabel() string {
	if q.CorrectOption == nil || !q.HasOptions() {
		return ""
	}
	return OptionLabel(*q.CorrectOption)
}

// RevealText is the text shown to the audience on reveal.
func (q Question) RevealText() string {
	if q.Answer != "" {
		return q.Answer
	}
	if q.CorrectOption != nil && *q.CorrectOption >= 0 && *q.CorrectOption < len(q.Options) {
		return q.Options[*q.CorrectOption]
	}
	return ""
}

// MaxOptions is the most choices a question may offer; the host picks them with keys a-f.
const MaxOptions = 6

// OptionLabel maps a zero-based option index to A, B, C...
func OptionLabel(index int) string {
	if index < 0 || index >= 26 {
		return "?"
	}
	return string(rune('A' + index))
}
