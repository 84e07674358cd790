// file: internals/features/lms/modules/modtype/quiz.go
package modtype

import (
	"encoding/json"
	"strings"
)

type quizDefinition struct{}

func init() { Register(quizDefinition{}) }

func (quizDefinition) Type() string { return TypeQuiz }

func (quizDefinition) Meta() DisplayMeta {
	return DisplayMeta{
		Label:       "Quiz",
		Description: "Graded questions (multiple choice, text, true/false, fill in the blank)",
		Icon:        "help-circle",
		Editor:      "quiz-editor",
	}
}

// DefaultData starts with no questions. An empty quiz is invalid by rule, so
// a freshly added quiz module prompts the author to add a question first.
func (quizDefinition) DefaultData() ModuleData { return QuizData{Questions: []Question{}} }

func (quizDefinition) DecodeData(raw []byte) (ModuleData, error) {
	var d QuizData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func (quizDefinition) ValidateData(data ModuleData, errs FieldErrors) {
	var d QuizData
	switch v := data.(type) {
	case QuizData:
		d = v
	case *QuizData:
		d = *v
	default:
		errs.add("unexpected payload for quiz module", "data")
		return
	}
	if len(d.Questions) == 0 {
		errs.add("quiz must have at least one question", "data", "questions")
		return
	}
	for i, q := range d.Questions {
		validateQuestion(q, i, errs)
	}
}

// validateQuestion is exhaustive over the Question union; an unhandled
// concrete type is reported, never silently accepted.
func validateQuestion(q Question, i int, errs FieldErrors) {
	switch t := q.(type) {
	case MultipleChoiceQuestion:
		if strings.TrimSpace(t.Question) == "" {
			errs.add("question text is required", "data", "questions", i, "question")
		}
		if len(t.Options) < 2 {
			errs.add("at least two options are required", "data", "questions", i, "options")
			return
		}
		correct := 0
		for j, opt := range t.Options {
			if strings.TrimSpace(opt.Text) == "" {
				errs.add("option text is required", "data", "questions", i, "options", j, "text")
			}
			if opt.IsCorrect {
				correct++
			}
		}
		if correct == 0 {
			errs.add("at least one option must be marked correct", "data", "questions", i, "options")
		}

	case TextQuestion:
		if strings.TrimSpace(t.Question) == "" {
			errs.add("question text is required", "data", "questions", i, "question")
		}
		if strings.TrimSpace(t.CorrectAnswer) == "" {
			errs.add("correct_answer is required", "data", "questions", i, "correct_answer")
		}

	case TrueFalseQuestion:
		// correct_answer is a bool; both values are valid and explanation is
		// optional, so only the question text is checked.
		if strings.TrimSpace(t.Question) == "" {
			errs.add("question text is required", "data", "questions", i, "question")
		}

	case FillInBlankQuestion:
		if strings.TrimSpace(t.Question) == "" {
			errs.add("question text is required", "data", "questions", i, "question")
		}
		if len(t.Blanks) == 0 {
			errs.add("at least one blank is required", "data", "questions", i, "blanks")
			return
		}
		for j, b := range t.Blanks {
			if strings.TrimSpace(b.Answer) == "" {
				errs.add("blank answer is required", "data", "questions", i, "blanks", j, "answer")
			}
		}

	default:
		errs.add("unknown question type", "data", "questions", i, "type")
	}
}
