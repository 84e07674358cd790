// file: internals/helpers/pagination_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, query string) PagingParams {
	t.Helper()
	app := fiber.New()
	var got PagingParams
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePaging(c, DefaultPagingOpts)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest("GET", "/"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePaging(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		page    int
		perPage int
	}{
		{"defaults", "", 1, 25},
		{"explicit", "?page=3&per_page=50", 3, 50},
		{"limit alias", "?limit=10", 1, 10},
		{"per_page wins over limit", "?per_page=30&limit=10", 1, 30},
		{"zero page normalized", "?page=0", 1, 25},
		{"negative page normalized", "?page=-2", 1, 25},
		{"per_page capped", "?per_page=9999", 1, 200},
		{"garbage ignored", "?page=abc&per_page=xyz", 1, 25},
		{"negative per_page falls back", "?per_page=-5", 1, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseWith(t, tc.query)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.perPage, p.PerPage)
		})
	}
}

func TestPagingParamsOffset(t *testing.T) {
	p := PagingParams{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := BuildPaginationMeta(51, PagingParams{Page: 2, PerPage: 25})
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	empty := BuildPaginationMeta(0, PagingParams{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
