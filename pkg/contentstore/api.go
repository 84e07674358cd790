// file: pkg/contentstore/api.go
package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ModuleOrder is one entry of a bulk module reorder. SectionID may differ from
// the module's current section, which moves the module there.
type ModuleOrder struct {
	ModuleID  string `json:"module_id"`
	Order     int    `json:"order"`
	SectionID string `json:"section_id"`
}

// ContentAPI is the persistence side of the builder cache. The Store only
// talks through this interface; tests substitute a fake.
type ContentAPI interface {
	FetchContent(ctx context.Context, courseID string) (Snapshot, error)
	CreateSection(ctx context.Context, courseID, title string, order int) (Section, error)
	UpdateSection(ctx context.Context, section Section) (Section, error)
	CreateModule(ctx context.Context, m Module) (Module, error)
	UpdateModule(ctx context.Context, m Module) (Module, error)
	UpdateSectionOrder(ctx context.Context, sections []Section) ([]Section, error)
	UpdateModuleOrder(ctx context.Context, courseID string, orders []ModuleOrder) ([]Module, error)
}

// APIError carries the server's error envelope. Fields holds dot-path keyed
// validation messages when the server returned 422.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error %d: %s (%d field errors)", e.Status, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// envelope mirrors the server's JSON response wrapper.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Client is the HTTP implementation of ContentAPI against the editor surface
// (/api/a). The token is a workspace-scoped editor JWT.
type Client struct {
	rc *resty.Client
}

func NewClient(baseURL, token string) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{rc: rc}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
	}
	if resp.IsError() || !env.Success {
		return &APIError{Status: resp.StatusCode(), Message: env.Message, Fields: env.Errors}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) FetchContent(ctx context.Context, courseID string) (Snapshot, error) {
	var snap Snapshot
	err := c.do(ctx, resty.MethodGet, "/api/a/courses/"+courseID+"/content", nil, &snap)
	return snap, err
}

func (c *Client) CreateSection(ctx context.Context, courseID, title string, order int) (Section, error) {
	var s Section
	body := map[string]any{"section_title": title, "section_order": order}
	err := c.do(ctx, resty.MethodPost, "/api/a/courses/"+courseID+"/sections", body, &s)
	return s, err
}

func (c *Client) UpdateSection(ctx context.Context, section Section) (Section, error) {
	var s Section
	body := map[string]any{"section_title": section.Title, "section_order": section.Order}
	err := c.do(ctx, resty.MethodPut, "/api/a/sections/"+section.ID, body, &s)
	return s, err
}

func (c *Client) CreateModule(ctx context.Context, m Module) (Module, error) {
	var out Module
	body := map[string]any{
		"module_section_id": m.SectionID,
		"module_course_id":  m.CourseID,
		"module_title":      m.Title,
		"module_type":       m.Type,
		"module_order":      m.Order,
	}
	if len(m.Data) > 0 {
		body["module_data"] = m.Data
	}
	err := c.do(ctx, resty.MethodPost, "/api/a/modules", body, &out)
	return out, err
}

func (c *Client) UpdateModule(ctx context.Context, m Module) (Module, error) {
	var out Module
	body := map[string]any{
		"module_title": m.Title,
		"module_order": m.Order,
	}
	if len(m.Data) > 0 {
		body["module_data"] = m.Data
	}
	err := c.do(ctx, resty.MethodPut, "/api/a/modules/"+m.ID, body, &out)
	return out, err
}

func (c *Client) UpdateSectionOrder(ctx context.Context, sections []Section) ([]Section, error) {
	items := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		items = append(items, map[string]any{"section_id": s.ID, "section_order": s.Order})
	}
	var out []Section
	err := c.do(ctx, resty.MethodPut, "/api/a/sections/order", map[string]any{"sections": items}, &out)
	return out, err
}

func (c *Client) UpdateModuleOrder(ctx context.Context, courseID string, orders []ModuleOrder) ([]Module, error) {
	var out []Module
	body := map[string]any{"course_id": courseID, "module_orders": orders}
	err := c.do(ctx, resty.MethodPut, "/api/a/modules/order", body, &out)
	return out, err
}
