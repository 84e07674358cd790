// file: internals/features/lms/modules/modtype/registry_test.go
package modtype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDefinition struct{ typ string }

func (s stubDefinition) Type() string                            { return s.typ }
func (s stubDefinition) Meta() DisplayMeta                       { return DisplayMeta{Label: s.typ} }
func (s stubDefinition) DefaultData() ModuleData                 { return TextData{} }
func (s stubDefinition) DecodeData(raw []byte) (ModuleData, error) { return TextData{}, nil }
func (s stubDefinition) ValidateData(ModuleData, FieldErrors)    {}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(stubDefinition{typ: "register-once"})
	require.Panics(t, func() {
		Register(stubDefinition{typ: "register-once"})
	})
}

func TestBuiltinTypesRegistered(t *testing.T) {
	for _, typ := range []string{TypeText, TypeVideo, TypeQuiz} {
		def, ok := Get(typ)
		require.True(t, ok, typ)
		assert.Equal(t, typ, def.Type())
		assert.NotEmpty(t, def.Meta().Label)
		assert.NotEmpty(t, def.Meta().Editor)
	}
}

func TestGetUnknownType(t *testing.T) {
	_, ok := Get("slideshow")
	assert.False(t, ok)

	_, err := DefaultData("slideshow")
	assert.Error(t, err)

	_, err = DecodeData("slideshow", []byte(`{}`))
	assert.Error(t, err)
}

func TestDefaultData(t *testing.T) {
	text, err := DefaultData(TypeText)
	require.NoError(t, err)
	assert.Equal(t, TextData{}, text)

	video, err := DefaultData(TypeVideo)
	require.NoError(t, err)
	assert.Equal(t, VideoData{}, video)

	quiz, err := DefaultData(TypeQuiz)
	require.NoError(t, err)
	require.IsType(t, QuizData{}, quiz)
	assert.Empty(t, quiz.(QuizData).Questions)
}

func TestDecodeDataDispatch(t *testing.T) {
	data, err := DecodeData(TypeVideo, []byte(`{"video_url":"https://youtu.be/abc123","description":"intro"}`))
	require.NoError(t, err)
	v, ok := data.(VideoData)
	require.True(t, ok)
	assert.Equal(t, "https://youtu.be/abc123", v.VideoURL)
	assert.Equal(t, "intro", v.Description)
}

func TestQuizQuestionRoundTrip(t *testing.T) {
	quiz := QuizData{Questions: []Question{
		MultipleChoiceQuestion{
			ID: "q1", Question: "Pick one", Order: 0,
			Options: []Option{
				{ID: "o1", Text: "yes", IsCorrect: true},
				{ID: "o2", Text: "no"},
			},
		},
		TrueFalseQuestion{ID: "q2", Question: "Go has classes", Order: 1, CorrectAnswer: false, Explanation: "It has types and methods"},
		FillInBlankQuestion{
			ID: "q3", Question: "Go was released in [blank]", Order: 2,
			Blanks: []Blank{{ID: "b1", Answer: "2009", Position: BlankPosition{Start: 19, End: 26}}},
		},
	}}

	raw, err := json.Marshal(quiz)
	require.NoError(t, err)

	var back QuizData
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Len(t, back.Questions, 3)
	assert.Equal(t, quiz.Questions[0], back.Questions[0])
	assert.Equal(t, quiz.Questions[1], back.Questions[1])
	assert.Equal(t, quiz.Questions[2], back.Questions[2])
}

func TestDecodeUnknownQuestionType(t *testing.T) {
	var d QuizData
	err := json.Unmarshal([]byte(`{"questions":[{"type":"matching","id":"q1"}]}`), &d)
	assert.Error(t, err)
}
