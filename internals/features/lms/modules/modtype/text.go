// file: internals/features/lms/modules/modtype/text.go
package modtype

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTextContentLen bounds the serialized rich-text document so a single
// module row cannot grow without limit.
const MaxTextContentLen = 50_000

type textDefinition struct{}

func init() { Register(textDefinition{}) }

func (textDefinition) Type() string { return TypeText }

func (textDefinition) Meta() DisplayMeta {
	return DisplayMeta{
		Label:       "Text",
		Description: "Rich text content",
		Icon:        "file-text",
		Editor:      "text-editor",
	}
}

// DefaultData starts empty. Note: the validator rejects empty content, so a
// freshly added text module must be filled in before it can be saved.
func (textDefinition) DefaultData() ModuleData { return TextData{} }

func (textDefinition) DecodeData(raw []byte) (ModuleData, error) {
	var d TextData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func (textDefinition) ValidateData(data ModuleData, errs FieldErrors) {
	var d TextData
	switch v := data.(type) {
	case TextData:
		d = v
	case *TextData:
		d = *v
	default:
		errs.add("unexpected payload for text module", "data")
		return
	}
	if strings.TrimSpace(d.Content) == "" {
		errs.add("content is required", "data", "content")
		return
	}
	if n := utf8.RuneCountInString(d.Content); n > MaxTextContentLen {
		errs.add(fmt.Sprintf("content exceeds %d characters (%d)", MaxTextContentLen, n), "data", "content")
	}
}
