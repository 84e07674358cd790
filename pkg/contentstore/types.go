// file: pkg/contentstore/types.go
package contentstore

import (
	"encoding/json"

	"kursusku_backend/internals/features/lms/modules/modtype"
)

// Section is the wire shape of a course section as the builder API returns it.
type Section struct {
	ID       string `json:"section_id"`
	CourseID string `json:"section_course_id"`
	Title    string `json:"section_title"`
	Order    int    `json:"section_order"`
}

// Module keeps module_data as raw JSON so untouched modules survive cache
// merges byte for byte. DecodeData yields the typed payload when a consumer
// needs to inspect it.
type Module struct {
	ID        string          `json:"module_id"`
	SectionID string          `json:"module_section_id"`
	CourseID  string          `json:"module_course_id"`
	Title     string          `json:"module_title"`
	Type      string          `json:"module_type"`
	Order     int             `json:"module_order"`
	Data      json.RawMessage `json:"module_data"`
}

func (m Module) DecodeData() (modtype.ModuleData, error) {
	return modtype.DecodeData(m.Type, m.Data)
}

// Snapshot is the per-course builder state: every section and every module of
// the course, flat. Ordering inside sections is by Module.Order.
type Snapshot struct {
	Sections []Section `json:"sections"`
	Modules  []Module  `json:"modules"`
}

// clone deep-copies the snapshot, including the raw data bytes, so a rollback
// restores state untouched by later in-place edits.
func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Sections: make([]Section, len(s.Sections)),
		Modules:  make([]Module, len(s.Modules)),
	}
	copy(out.Sections, s.Sections)
	for i, m := range s.Modules {
		if m.Data != nil {
			m.Data = append(json.RawMessage(nil), m.Data...)
		}
		out.Modules[i] = m
	}
	return out
}
