package question

// Question is a single multiple-choice item. CorrectIndex points into Answers
// in file order and is fixed once the question has been parsed.
type Question struct {
	Prompt       string   `json:"question" yaml:"question"`
	Answers      []string `json:"answers" yaml:"answers"`
	CorrectIndex int      `json:"correct" yaml:"correct"`
}

// Correct returns the text of the correct answer.
func (q Question) Correct() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Answers) {
		return ""
	}
	return q.Answers[q.CorrectIndex]
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	answers := make([]string, len(q.Answers))
	copy(answers, q.Answers)
	return Question{Prompt: q.Prompt, Answers: answers, CorrectIndex: q.CorrectIndex}
}

// Bank is the ordered set of questions loaded from one source.
type Bank struct {
	Questions []Question
}

// Len returns the number of questions in the bank.
func (b Bank) Len() int {
	return len(b.Questions)
}

// Question returns the question at index i in file order.
func (b Bank) Question(i int) Question {
	return b.Questions[i]
}

// Document is the structured (YAML or JSON) representation of a bank.
type Document struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// DocumentVersion is the only structured schema version understood.
const DocumentVersion = 1
