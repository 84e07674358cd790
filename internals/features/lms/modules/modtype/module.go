// file: internals/features/lms/modules/modtype/module.go
package modtype

import (
	"encoding/json"
	"fmt"
)

// Known module type tags. The set is closed: adding a type means adding a
// Definition (see registry.go) and a ModuleData variant here.
const (
	TypeText  = "text"
	TypeVideo = "video"
	TypeQuiz  = "quiz"
)

// Module is the neutral course-builder representation validated by this
// package. Controllers map it from/to the persisted row, the client SDK maps
// it from/to the wire DTO.
type Module struct {
	ID        string     `json:"module_id"`
	SectionID string     `json:"module_section_id"`
	Title     string     `json:"module_title"`
	Type      string     `json:"module_type"`
	Order     int        `json:"module_order"`
	Data      ModuleData `json:"module_data"`
}

// ModuleData is the tagged union over per-type payloads. The tag lives on the
// owning Module (module_type), not inside the payload itself.
type ModuleData interface {
	ModuleType() string
}

// =============================
// text
// =============================

type TextData struct {
	Content string `json:"content"`
}

func (TextData) ModuleType() string { return TypeText }

// =============================
// video
// =============================

type VideoData struct {
	VideoURL     string `json:"video_url"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

func (VideoData) ModuleType() string { return TypeVideo }

// =============================
// quiz
// =============================

type QuizData struct {
	Questions []Question `json:"questions"`
}

func (QuizData) ModuleType() string { return TypeQuiz }

// UnmarshalJSON dispatches each question on its "type" discriminant.
func (q *QuizData) UnmarshalJSON(b []byte) error {
	var raw struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	questions := make([]Question, 0, len(raw.Questions))
	for i, r := range raw.Questions {
		qq, err := decodeQuestion(r)
		if err != nil {
			return fmt.Errorf("questions[%d]: %w", i, err)
		}
		questions = append(questions, qq)
	}
	q.Questions = questions
	return nil
}

// Question type tags.
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionText           = "text"
	QuestionTrueFalse      = "true_false"
	QuestionFillInBlank    = "fill_in_blank"
)

// Question is the tagged union over quiz question kinds.
type Question interface {
	QuestionType() string
}

type MultipleChoiceQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Order    int      `json:"order"`
	Options  []Option `json:"options"`
}

type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

func (MultipleChoiceQuestion) QuestionType() string { return QuestionMultipleChoice }

type TextQuestion struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	Order         int    `json:"order"`
	CorrectAnswer string `json:"correct_answer"`
}

func (TextQuestion) QuestionType() string { return QuestionText }

type TrueFalseQuestion struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	Order         int    `json:"order"`
	CorrectAnswer bool   `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

func (TrueFalseQuestion) QuestionType() string { return QuestionTrueFalse }

type FillInBlankQuestion struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Order    int     `json:"order"`
	Blanks   []Blank `json:"blanks"`
}

type Blank struct {
	ID       string        `json:"id"`
	Answer   string        `json:"answer"`
	Position BlankPosition `json:"position"`
}

type BlankPosition struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (FillInBlankQuestion) QuestionType() string { return QuestionFillInBlank }

// decodeQuestion reads the discriminant and unmarshals into the matching
// concrete type. Unknown tags are an error, not a silent skip.
func decodeQuestion(raw json.RawMessage) (Question, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case QuestionMultipleChoice:
		var q MultipleChoiceQuestion
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, err
		}
		return q, nil
	case QuestionText:
		var q TextQuestion
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, err
		}
		return q, nil
	case QuestionTrueFalse:
		var q TrueFalseQuestion
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, err
		}
		return q, nil
	case QuestionFillInBlank:
		var q FillInBlankQuestion
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, err
		}
		return q, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", head.Type)
	}
}

// MarshalJSON on each variant re-attaches the discriminant so the stored JSON
// round-trips through decodeQuestion.
func (q MultipleChoiceQuestion) MarshalJSON() ([]byte, error) { return marshalQuestion(q) }
func (q TextQuestion) MarshalJSON() ([]byte, error)           { return marshalQuestion(q) }
func (q TrueFalseQuestion) MarshalJSON() ([]byte, error)      { return marshalQuestion(q) }
func (q FillInBlankQuestion) MarshalJSON() ([]byte, error)    { return marshalQuestion(q) }

func marshalQuestion(q Question) ([]byte, error) {
	var body []byte
	var err error
	switch t := q.(type) {
	case MultipleChoiceQuestion:
		type alias MultipleChoiceQuestion
		body, err = json.Marshal(alias(t))
	case TextQuestion:
		type alias TextQuestion
		body, err = json.Marshal(alias(t))
	case TrueFalseQuestion:
		type alias TrueFalseQuestion
		body, err = json.Marshal(alias(t))
	case FillInBlankQuestion:
		type alias FillInBlankQuestion
		body, err = json.Marshal(alias(t))
	default:
		return nil, fmt.Errorf("unknown question type %T", q)
	}
	if err != nil {
		return nil, err
	}
	// splice {"type":"..."} into the object
	tag, _ := json.Marshal(q.QuestionType())
	if len(body) == 2 { // "{}"
		return []byte(`{"type":` + string(tag) + `}`), nil
	}
	return append([]byte(`{"type":`+string(tag)+`,`), body[1:]...), nil
}
