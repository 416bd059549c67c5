package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func intQuery(c echo.Context, name string, def int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// pageParams reads page/per_page query params, 1-based page, capped at 100 rows.
func pageParams(c echo.Context) (offset, limit int) {
	page := intQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	per := intQuery(c, "per_page", 20)
	if per < 1 {
		per = 20
	}
	if per > 100 {
		per = 100
	}
	return (page - 1) * per, per
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
