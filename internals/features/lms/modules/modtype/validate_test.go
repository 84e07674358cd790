// file: internals/features/lms/modules/modtype/validate_test.go
package modtype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModule(typ string, data ModuleData) Module {
	return Module{
		ID:        "8b9b2a52-3a93-4a8e-9a31-77a1f1e7a001",
		SectionID: "8b9b2a52-3a93-4a8e-9a31-77a1f1e7a002",
		Title:     "Intro",
		Type:      typ,
		Order:     0,
		Data:      data,
	}
}

func TestValidateBaseFields(t *testing.T) {
	m := validModule(TypeText, TextData{Content: "hello"})
	m.ID = ""
	m.Title = ""
	m.SectionID = ""
	m.Order = -1

	errs := Validate(m)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "id")
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "section_id")
	assert.Contains(t, errs, "order")
}

func TestValidateUnknownType(t *testing.T) {
	m := validModule("slideshow", TextData{Content: "x"})
	errs := Validate(m)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "type")
}

func TestValidateDataTypeMismatch(t *testing.T) {
	m := validModule(TypeVideo, TextData{Content: "x"})
	errs := Validate(m)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data")
}

func TestValidatePointerPayloads(t *testing.T) {
	// A *TextData (or any pointer variant) satisfies ModuleData through the
	// value-receiver method set, so Validate must handle it like the value
	// form instead of blowing up on a type assertion.
	assert.Nil(t, Validate(validModule(TypeText, &TextData{Content: "some rich text"})))
	assert.Nil(t, Validate(validModule(TypeVideo, &VideoData{VideoURL: "https://youtu.be/abc123"})))

	errs := Validate(validModule(TypeQuiz, &QuizData{Questions: []Question{}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions")
}

func TestValidateText(t *testing.T) {
	assert.Nil(t, Validate(validModule(TypeText, TextData{Content: "some rich text"})))

	errs := Validate(validModule(TypeText, TextData{Content: "   "}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.content")

	long := strings.Repeat("a", MaxTextContentLen+1)
	errs = Validate(validModule(TypeText, TextData{Content: long}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.content")
}

// Round-trip: default data for text is empty and therefore invalid until the
// author writes something. Same fail-closed behaviour as an empty quiz.
func TestDefaultDataValidateRoundTrip(t *testing.T) {
	textDefault, err := DefaultData(TypeText)
	require.NoError(t, err)
	assert.NotNil(t, Validate(validModule(TypeText, textDefault)))

	quizDefault, err := DefaultData(TypeQuiz)
	require.NoError(t, err)
	errs := Validate(validModule(TypeQuiz, quizDefault))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions")
}

func TestValidateVideoURLs(t *testing.T) {
	cases := []struct {
		url string
		ok  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtube.com/shorts/abc123def", true},
		{"https://youtu.be/abc123", true},
		{"https://vimeo.com/123456789", true},
		{"https://www.dailymotion.com/video/x7tgad0", true},
		{"https://fast.wistia.com/medias/e4a27b971d", true},
		{"https://example.com/x", false},
		{"not a url at all", false},
		{"", false},
		{"ftp://youtu.be/abc123", false},
	}
	for _, tc := range cases {
		errs := Validate(validModule(TypeVideo, VideoData{VideoURL: tc.url}))
		if tc.ok {
			assert.Nil(t, errs, tc.url)
		} else {
			require.NotNil(t, errs, tc.url)
			assert.Contains(t, errs, "data.video_url", tc.url)
		}
	}
}

func TestValidateVideoThumbnail(t *testing.T) {
	d := VideoData{VideoURL: "https://youtu.be/abc123", ThumbnailURL: "::::not-a-url"}
	errs := Validate(validModule(TypeVideo, d))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.thumbnail_url")

	d.ThumbnailURL = "https://cdn.example.com/thumb.webp"
	assert.Nil(t, Validate(validModule(TypeVideo, d)))
}

func mcQuestion() MultipleChoiceQuestion {
	return MultipleChoiceQuestion{
		ID: "q1", Question: "Pick one", Order: 0,
		Options: []Option{
			{ID: "o1", Text: "right", IsCorrect: true},
			{ID: "o2", Text: "wrong"},
		},
	}
}

// A fresh multiple-choice question with two default options, the first marked
// correct, validates cleanly.
func TestValidateQuizMultipleChoiceDefaultShape(t *testing.T) {
	assert.Nil(t, Validate(validModule(TypeQuiz, QuizData{Questions: []Question{mcQuestion()}})))
}

func TestValidateQuizMultipleChoiceRules(t *testing.T) {
	// one option only
	q := mcQuestion()
	q.Options = q.Options[:1]
	errs := Validate(validModule(TypeQuiz, QuizData{Questions: []Question{q}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.0.options")

	// no correct option left after deleting the only correct one
	q = mcQuestion()
	q.Options[0].IsCorrect = false
	errs = Validate(validModule(TypeQuiz, QuizData{Questions: []Question{q}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.0.options")
	assert.Contains(t, errs["data.questions.0.options"], "correct")

	// empty option text, addressed per option
	q = mcQuestion()
	q.Options[1].Text = "  "
	errs = Validate(validModule(TypeQuiz, QuizData{Questions: []Question{q}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.0.options.1.text")
}

func TestValidateQuizTextQuestion(t *testing.T) {
	ok := TextQuestion{ID: "q1", Question: "Capital of France?", CorrectAnswer: "Paris"}
	assert.Nil(t, Validate(validModule(TypeQuiz, QuizData{Questions: []Question{ok}})))

	bad := ok
	bad.CorrectAnswer = ""
	errs := Validate(validModule(TypeQuiz, QuizData{Questions: []Question{bad}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.0.correct_answer")
}

func TestValidateQuizTrueFalseQuestion(t *testing.T) {
	// both answers and a missing explanation are fine
	for _, answer := range []bool{true, false} {
		q := TrueFalseQuestion{ID: "q1", Question: "The sky is blue", CorrectAnswer: answer}
		assert.Nil(t, Validate(validModule(TypeQuiz, QuizData{Questions: []Question{q}})))
	}
}

func TestValidateQuizFillInBlank(t *testing.T) {
	ok := FillInBlankQuestion{
		ID: "q1", Question: "Go was released in [blank]",
		Blanks: []Blank{{ID: "b1", Answer: "2009", Position: BlankPosition{Start: 19, End: 26}}},
	}
	assert.Nil(t, Validate(validModule(TypeQuiz, QuizData{Questions: []Question{ok}})))

	noBlanks := ok
	noBlanks.Blanks = nil
	errs := Validate(validModule(TypeQuiz, QuizData{Questions: []Question{noBlanks}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.0.blanks")

	emptyAnswer := ok
	emptyAnswer.Blanks = []Blank{{ID: "b1", Answer: " "}}
	errs = Validate(validModule(TypeQuiz, QuizData{Questions: []Question{emptyAnswer}}))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.0.blanks.0.answer")
}

func TestValidateQuizSecondQuestionPath(t *testing.T) {
	bad := mcQuestion()
	bad.Options[0].IsCorrect = false
	quiz := QuizData{Questions: []Question{mcQuestion(), bad}}
	errs := Validate(validModule(TypeQuiz, quiz))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "data.questions.1.options")
}
