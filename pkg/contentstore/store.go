// file: pkg/contentstore/store.go
package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/lms/modules/modtype"
)

// Store is the builder's optimistic per-course cache. Every mutation follows
// the same shape: snapshot, apply locally, call the API, then reconcile with
// the server's canonical row or roll the snapshot back.
//
// Mutations are serialized by the mutex, which is held across the API call.
// The builder UI is single-session; last applied wins.
type Store struct {
	mu    sync.Mutex
	api   ContentAPI
	cache map[string]Snapshot
}

func NewStore(api ContentAPI) *Store {
	return &Store{api: api, cache: make(map[string]Snapshot)}
}

// Content returns a copy of the cached snapshot for the course, if present.
func (s *Store) Content(courseID string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.cache[courseID]
	if !ok {
		return Snapshot{}, false
	}
	return snap.clone(), true
}

// FetchContent loads the authoritative snapshot from the server and replaces
// whatever the cache held for the course.
func (s *Store) FetchContent(ctx context.Context, courseID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.api.FetchContent(ctx, courseID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch course content: %w", err)
	}
	s.cache[courseID] = snap
	return snap.clone(), nil
}

// AddSection inserts a placeholder section with a local id, then swaps it for
// the server-assigned row. On failure the placeholder is removed.
func (s *Store) AddSection(ctx context.Context, courseID, title string, order int) (Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cache[courseID].clone()
	local := Section{
		ID:       "local-" + uuid.NewString(),
		CourseID: courseID,
		Title:    title,
		Order:    order,
	}
	snap := s.cache[courseID]
	snap.Sections = append(snap.Sections, local)
	s.cache[courseID] = snap

	created, err := s.api.CreateSection(ctx, courseID, title, order)
	if err != nil {
		s.cache[courseID] = prev
		return Section{}, fmt.Errorf("failed to add section: %w", err)
	}

	snap = s.cache[courseID]
	for i := range snap.Sections {
		if snap.Sections[i].ID == local.ID {
			snap.Sections[i] = created
			break
		}
	}
	s.cache[courseID] = snap
	return created, nil
}

// UpdateSection replaces the cached section's fields, then reconciles with the
// server row. On failure the prior value is restored.
func (s *Store) UpdateSection(ctx context.Context, section Section) (Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cache[section.CourseID].clone()
	s.replaceSection(section.CourseID, section)

	updated, err := s.api.UpdateSection(ctx, section)
	if err != nil {
		s.cache[section.CourseID] = prev
		return Section{}, fmt.Errorf("failed to update section: %w", err)
	}
	s.replaceSection(section.CourseID, updated)
	return updated, nil
}

// AddModule inserts a module optimistically. When m.Data is empty the module
// type registry's default factory fills it in; an unknown type fails locally
// with no network call.
func (s *Store) AddModule(ctx context.Context, m Module) (Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(m.Data) == 0 {
		data, err := modtype.DefaultData(m.Type)
		if err != nil {
			return Module{}, fmt.Errorf("failed to add module: %w", err)
		}
		raw, err := json.Marshal(data)
		if err != nil {
			return Module{}, fmt.Errorf("failed to add module: %w", err)
		}
		m.Data = raw
	}

	localID := "local-" + uuid.NewString()
	prev := s.cache[m.CourseID].clone()
	optimistic := m
	optimistic.ID = localID
	snap := s.cache[m.CourseID]
	snap.Modules = append(snap.Modules, optimistic)
	s.cache[m.CourseID] = snap

	created, err := s.api.CreateModule(ctx, m)
	if err != nil {
		s.cache[m.CourseID] = prev
		return Module{}, fmt.Errorf("failed to add module: %w", err)
	}

	snap = s.cache[m.CourseID]
	for i := range snap.Modules {
		if snap.Modules[i].ID == localID {
			snap.Modules[i] = created
			break
		}
	}
	s.cache[m.CourseID] = snap
	return created, nil
}

// UpdateModule fails fast, without a network call, when the module is not in
// the current snapshot. Otherwise it applies the edit optimistically and
// reconciles or rolls back.
func (s *Store) UpdateModule(ctx context.Context, m Module) (Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.cache[m.CourseID]
	if !ok {
		return Module{}, fmt.Errorf("module %s: course %s not loaded", m.ID, m.CourseID)
	}
	idx := -1
	for i := range snap.Modules {
		if snap.Modules[i].ID == m.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Module{}, fmt.Errorf("module %s not found in course content", m.ID)
	}

	prev := snap.clone()
	merged := snap.Modules[idx]
	merged.Title = m.Title
	merged.Order = m.Order
	if len(m.Data) > 0 {
		merged.Data = append(json.RawMessage(nil), m.Data...)
	}
	snap.Modules[idx] = merged
	s.cache[m.CourseID] = snap

	updated, err := s.api.UpdateModule(ctx, merged)
	if err != nil {
		s.cache[m.CourseID] = prev
		return Module{}, fmt.Errorf("failed to update module: %w", err)
	}

	snap = s.cache[m.CourseID]
	for i := range snap.Modules {
		if snap.Modules[i].ID == updated.ID {
			snap.Modules[i] = updated
			break
		}
	}
	s.cache[m.CourseID] = snap
	return updated, nil
}

// UpdateSectionOrder replaces the whole sections list with the client-computed
// order. An empty list is a no-op; the course is keyed off the first entry.
func (s *Store) UpdateSectionOrder(ctx context.Context, sections []Section) ([]Section, error) {
	if len(sections) == 0 {
		return nil, nil
	}
	courseID := sections[0].CourseID

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cache[courseID].clone()
	snap := s.cache[courseID]
	snap.Sections = append([]Section(nil), sections...)
	s.cache[courseID] = snap

	canonical, err := s.api.UpdateSectionOrder(ctx, sections)
	if err != nil {
		s.cache[courseID] = prev
		return nil, fmt.Errorf("failed to reorder sections: %w", err)
	}

	snap = s.cache[courseID]
	snap.Sections = canonical
	s.cache[courseID] = snap
	return canonical, nil
}

// UpdateModuleOrder applies position and section reassignment to the listed
// modules. Reconciliation merges server rows by id instead of replacing the
// list, so modules the call never touched keep their cached bytes.
func (s *Store) UpdateModuleOrder(ctx context.Context, courseID string, orders []ModuleOrder) error {
	if len(orders) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cache[courseID].clone()
	snap := s.cache[courseID]
	byTarget := make(map[string]ModuleOrder, len(orders))
	for _, o := range orders {
		byTarget[o.ModuleID] = o
	}
	for i := range snap.Modules {
		if o, ok := byTarget[snap.Modules[i].ID]; ok {
			snap.Modules[i].Order = o.Order
			snap.Modules[i].SectionID = o.SectionID
		}
	}
	s.cache[courseID] = snap

	canonical, err := s.api.UpdateModuleOrder(ctx, courseID, orders)
	if err != nil {
		s.cache[courseID] = prev
		return fmt.Errorf("failed to reorder modules: %w", err)
	}

	byID := make(map[string]Module, len(canonical))
	for _, m := range canonical {
		byID[m.ID] = m
	}
	snap = s.cache[courseID]
	for i := range snap.Modules {
		if m, ok := byID[snap.Modules[i].ID]; ok {
			snap.Modules[i] = m
		}
	}
	s.cache[courseID] = snap
	return nil
}

func (s *Store) replaceSection(courseID string, section Section) {
	snap := s.cache[courseID]
	for i := range snap.Sections {
		if snap.Sections[i].ID == section.ID {
			snap.Sections[i] = section
			break
		}
	}
	s.cache[courseID] = snap
}
