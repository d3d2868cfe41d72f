package catalog

import (
	"fmt"
	"strings"
)

// DefaultTitle is the carnival name shown on the landing screen.
const DefaultTitle = "Valmiki Quiz Carnival 2082"

// QuestionsPerSubject is the board size of the builtin subjects.
const QuestionsPerSubject = 20

var builtinSubjects = []struct {
	id   string
	name string
	icon string
}{
	{id: "history", name: "History", icon: "📜"},
	{id: "geography", name: "Geography", icon: "🌍"},
	{id: "current-affairs", name: "Current Affairs", icon: "📰"},
	{id: "games-sports", name: "Games & Sports", icon: "🏆"},
	{id: "maths-iq", name: "Maths & IQ", icon: "🧠"},
	{id: "science-tech", name: "Science & Technology", icon: "⚛"},
	{id: "religion-culture", name: "Religion & Culture", icon: "🛕"},
	{id: "art-literature", name: "Art & Literature", icon: "🎨"},
}

// Builtin returns the default carnival catalog with placeholder questions.
func Builtin() Catalog {
	subjects := make([]Subject, 0, len(builtinSubjects))
	for _, entry := range builtinSubjects {
		subjects = append(subjects, Subject{
			ID:        entry.id,
			Name:      entry.name,
			Icon:      entry.icon,
			Questions: Generate(entry.id, QuestionsPerSubject),
		})
	}
	return Catalog{Version: 1, Title: DefaultTitle, Subjects: subjects}
}

// Generate builds count placeholder questions for a subject prefix.
func Generate(prefix string, count int) []Question {
	if count <= 0 {
		return nil
	}
	questions := make([]Question, 0, count)
	upper := strings.ToUpper(prefix)
	for n := 1; n <= count; n++ {
		questions = append(questions, Question{
			ID:     fmt.Sprintf("%s%d", prefix, n),
			Number: n,
			Prompt: fmt.Sprintf("%s Question %d", upper, n),
			Answer: fmt.Sprintf("Answer %d", n),
		})
	}
	return questions
}
