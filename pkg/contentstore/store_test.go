// file: pkg/contentstore/store_test.go
package contentstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI lets each test stub the calls it needs and counts invocations so
// fail-fast paths can assert no network traffic happened.
type fakeAPI struct {
	calls int

	fetchContent       func(courseID string) (Snapshot, error)
	createSection      func(courseID, title string, order int) (Section, error)
	updateSection      func(section Section) (Section, error)
	createModule       func(m Module) (Module, error)
	updateModule       func(m Module) (Module, error)
	updateSectionOrder func(sections []Section) ([]Section, error)
	updateModuleOrder  func(courseID string, orders []ModuleOrder) ([]Module, error)
}

func (f *fakeAPI) FetchContent(_ context.Context, courseID string) (Snapshot, error) {
	f.calls++
	return f.fetchContent(courseID)
}
func (f *fakeAPI) CreateSection(_ context.Context, courseID, title string, order int) (Section, error) {
	f.calls++
	return f.createSection(courseID, title, order)
}
func (f *fakeAPI) UpdateSection(_ context.Context, section Section) (Section, error) {
	f.calls++
	return f.updateSection(section)
}
func (f *fakeAPI) CreateModule(_ context.Context, m Module) (Module, error) {
	f.calls++
	return f.createModule(m)
}
func (f *fakeAPI) UpdateModule(_ context.Context, m Module) (Module, error) {
	f.calls++
	return f.updateModule(m)
}
func (f *fakeAPI) UpdateSectionOrder(_ context.Context, sections []Section) ([]Section, error) {
	f.calls++
	return f.updateSectionOrder(sections)
}
func (f *fakeAPI) UpdateModuleOrder(_ context.Context, courseID string, orders []ModuleOrder) ([]Module, error) {
	f.calls++
	return f.updateModuleOrder(courseID, orders)
}

const courseID = "c-1"

func seededStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	seed := Snapshot{
		Sections: []Section{
			{ID: "s-1", CourseID: courseID, Title: "Intro", Order: 0},
			{ID: "s-2", CourseID: courseID, Title: "Advanced", Order: 1},
		},
		Modules: []Module{
			{ID: "m-1", SectionID: "s-1", CourseID: courseID, Title: "Welcome", Type: "text", Order: 0,
				Data: json.RawMessage(`{"content":"hello"}`)},
			{ID: "m-2", SectionID: "s-2", CourseID: courseID, Title: "Deep dive", Type: "video", Order: 0,
				Data: json.RawMessage(`{"video_url":"https://youtu.be/abc123"}`)},
		},
	}
	api.fetchContent = func(string) (Snapshot, error) { return seed.clone(), nil }
	store := NewStore(api)
	_, err := store.FetchContent(context.Background(), courseID)
	require.NoError(t, err)
	return store
}

func TestFetchContentPopulatesCache(t *testing.T) {
	store := seededStore(t, &fakeAPI{})

	snap, ok := store.Content(courseID)
	require.True(t, ok)
	assert.Len(t, snap.Sections, 2)
	assert.Len(t, snap.Modules, 2)

	_, ok = store.Content("other-course")
	assert.False(t, ok)
}

func TestAddSectionReconcilesServerRow(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	api.createSection = func(cid, title string, order int) (Section, error) {
		return Section{ID: "s-99", CourseID: cid, Title: title, Order: order}, nil
	}

	created, err := store.AddSection(context.Background(), courseID, "Extras", 2)
	require.NoError(t, err)
	assert.Equal(t, "s-99", created.ID)

	snap, _ := store.Content(courseID)
	require.Len(t, snap.Sections, 3)
	assert.Equal(t, "s-99", snap.Sections[2].ID)
	for _, s := range snap.Sections {
		assert.NotContains(t, s.ID, "local-")
	}
}

func TestAddSectionRollbackRestoresSnapshot(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	before, _ := store.Content(courseID)

	api.createSection = func(string, string, int) (Section, error) {
		return Section{}, errors.New("boom")
	}
	_, err := store.AddSection(context.Background(), courseID, "Extras", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add section")

	after, _ := store.Content(courseID)
	assert.Equal(t, before, after)
}

func TestUpdateSectionRollback(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	before, _ := store.Content(courseID)

	api.updateSection = func(Section) (Section, error) {
		return Section{}, errors.New("boom")
	}
	_, err := store.UpdateSection(context.Background(),
		Section{ID: "s-1", CourseID: courseID, Title: "Renamed", Order: 0})
	require.Error(t, err)

	after, _ := store.Content(courseID)
	assert.Equal(t, before, after)
}

func TestAddModuleFillsDefaultData(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)

	var sent Module
	api.createModule = func(m Module) (Module, error) {
		sent = m
		m.ID = "m-99"
		return m, nil
	}

	created, err := store.AddModule(context.Background(), Module{
		SectionID: "s-1", CourseID: courseID, Title: "Notes", Type: "text", Order: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "m-99", created.ID)
	assert.JSONEq(t, `{"content":""}`, string(sent.Data))

	snap, _ := store.Content(courseID)
	require.Len(t, snap.Modules, 3)
	assert.Equal(t, "m-99", snap.Modules[2].ID)
}

func TestAddModuleUnknownTypeFailsLocally(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	callsBefore := api.calls

	_, err := store.AddModule(context.Background(), Module{
		SectionID: "s-1", CourseID: courseID, Title: "Bad", Type: "hologram", Order: 1,
	})
	require.Error(t, err)
	assert.Equal(t, callsBefore, api.calls)
}

func TestUpdateModuleFailsFastWhenAbsent(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	callsBefore := api.calls

	_, err := store.UpdateModule(context.Background(), Module{
		ID: "m-missing", CourseID: courseID, Title: "Ghost",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, callsBefore, api.calls, "absent module must not reach the network")
}

func TestUpdateModuleRollback(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	before, _ := store.Content(courseID)

	api.updateModule = func(Module) (Module, error) {
		return Module{}, errors.New("boom")
	}
	_, err := store.UpdateModule(context.Background(), Module{
		ID: "m-1", CourseID: courseID, Title: "Edited", Order: 0,
		Data: json.RawMessage(`{"content":"edited"}`),
	})
	require.Error(t, err)

	after, _ := store.Content(courseID)
	assert.Equal(t, before, after)
}

func TestUpdateModuleReconciles(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)

	api.updateModule = func(m Module) (Module, error) {
		m.Title = "Server title"
		return m, nil
	}
	updated, err := store.UpdateModule(context.Background(), Module{
		ID: "m-1", CourseID: courseID, Title: "Client title", Order: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Server title", updated.Title)

	snap, _ := store.Content(courseID)
	assert.Equal(t, "Server title", snap.Modules[0].Title)
	// Untouched fields carried over from the cached row.
	assert.Equal(t, "s-1", snap.Modules[0].SectionID)
}

func TestUpdateSectionOrderEmptyListIsNoop(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	callsBefore := api.calls

	out, err := store.UpdateSectionOrder(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, callsBefore, api.calls)
}

func TestUpdateSectionOrderSwap(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)

	api.updateSectionOrder = func(sections []Section) ([]Section, error) {
		return sections, nil
	}
	swapped := []Section{
		{ID: "s-2", CourseID: courseID, Title: "Advanced", Order: 0},
		{ID: "s-1", CourseID: courseID, Title: "Intro", Order: 1},
	}
	out, err := store.UpdateSectionOrder(context.Background(), swapped)
	require.NoError(t, err)
	assert.Equal(t, swapped, out)

	snap, _ := store.Content(courseID)
	assert.Equal(t, "s-2", snap.Sections[0].ID)
	assert.Equal(t, 0, snap.Sections[0].Order)
}

func TestUpdateSectionOrderIdempotent(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)

	api.updateSectionOrder = func(sections []Section) ([]Section, error) {
		return sections, nil
	}
	swapped := []Section{
		{ID: "s-2", CourseID: courseID, Title: "Advanced", Order: 0},
		{ID: "s-1", CourseID: courseID, Title: "Intro", Order: 1},
	}

	_, err := store.UpdateSectionOrder(context.Background(), swapped)
	require.NoError(t, err)
	first, _ := store.Content(courseID)

	// Re-applying an already-applied order changes nothing.
	_, err = store.UpdateSectionOrder(context.Background(), swapped)
	require.NoError(t, err)
	second, _ := store.Content(courseID)

	assert.Equal(t, first, second)
}

func TestUpdateSectionOrderRollback(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	before, _ := store.Content(courseID)

	api.updateSectionOrder = func([]Section) ([]Section, error) {
		return nil, errors.New("boom")
	}
	_, err := store.UpdateSectionOrder(context.Background(), []Section{
		{ID: "s-2", CourseID: courseID, Order: 0},
		{ID: "s-1", CourseID: courseID, Order: 1},
	})
	require.Error(t, err)

	after, _ := store.Content(courseID)
	assert.Equal(t, before, after)
}

func TestUpdateModuleOrderMergePreservesUntouchedBytes(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	before, _ := store.Content(courseID)
	untouched := string(before.Modules[1].Data) // m-2 stays put

	api.updateModuleOrder = func(cid string, orders []ModuleOrder) ([]Module, error) {
		// Server answers with the moved module only; m-2 was not part of
		// the batch so the merge must not disturb it.
		return []Module{
			{ID: "m-1", SectionID: "s-2", CourseID: cid, Title: "Welcome", Type: "text", Order: 5,
				Data: json.RawMessage(`{"content":"hello"}`)},
		}, nil
	}
	err := store.UpdateModuleOrder(context.Background(), courseID, []ModuleOrder{
		{ModuleID: "m-1", Order: 5, SectionID: "s-2"},
	})
	require.NoError(t, err)

	snap, _ := store.Content(courseID)
	require.Len(t, snap.Modules, 2)
	assert.Equal(t, 5, snap.Modules[0].Order)
	assert.Equal(t, "s-2", snap.Modules[0].SectionID)
	assert.Equal(t, untouched, string(snap.Modules[1].Data))
}

func TestUpdateModuleOrderRollback(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)
	before, _ := store.Content(courseID)

	api.updateModuleOrder = func(string, []ModuleOrder) ([]Module, error) {
		return nil, errors.New("boom")
	}
	err := store.UpdateModuleOrder(context.Background(), courseID, []ModuleOrder{
		{ModuleID: "m-1", Order: 5, SectionID: "s-2"},
	})
	require.Error(t, err)

	after, _ := store.Content(courseID)
	assert.Equal(t, before, after)
}

func TestUpdateModuleOrderIdempotent(t *testing.T) {
	api := &fakeAPI{}
	store := seededStore(t, api)

	api.updateModuleOrder = func(cid string, orders []ModuleOrder) ([]Module, error) {
		out := make([]Module, 0, len(orders))
		for _, o := range orders {
			out = append(out, Module{ID: o.ModuleID, SectionID: o.SectionID, CourseID: cid,
				Order: o.Order, Type: "text", Title: "Welcome",
				Data: json.RawMessage(`{"content":"hello"}`)})
		}
		return out, nil
	}
	orders := []ModuleOrder{{ModuleID: "m-1", Order: 3, SectionID: "s-1"}}

	require.NoError(t, store.UpdateModuleOrder(context.Background(), courseID, orders))
	first, _ := store.Content(courseID)
	require.NoError(t, store.UpdateModuleOrder(context.Background(), courseID, orders))
	second, _ := store.Content(courseID)

	assert.Equal(t, first, second)
}
