package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
)

// tolerant of context value types (int / int64 / float64 / string)
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

// getSession rebuilds the authenticated identity placed in the gin
// context by the auth middleware.
func getSession(c *gin.Context) models.Session {
	var s models.Session
	if id, ok := getIntFromCtx(c, "user_id"); ok {
		s.UserID = id
	}
	if v, ok := c.Get("username"); ok {
		s.Username, _ = v.(string)
	}
	if v, ok := c.Get("role"); ok {
		s.Role, _ = v.(string)
	}
	return s
}

// csvParam reads a repeatable query param that also accepts
// comma-separated values (?sector=a&sector=b or ?sector=a,b).
func csvParam(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// parseFilters builds the sidebar FilterSet from query params. The
// date window defaults to the last 60 days through today; passing
// start or end as "" (explicitly empty) drops that bound.
func parseFilters(c *gin.Context) models.FilterSet {
	defStart, defEnd := models.DefaultFilterWindow(time.Now())

	f := models.FilterSet{
		Sectors: csvParam(c, "sector"),
		Regions: csvParam(c, "region"),
		Start:   c.DefaultQuery("start", defStart),
		End:     c.DefaultQuery("end", defEnd),
	}
	for _, raw := range csvParam(c, "rep_id") {
		if id, err := strconv.Atoi(raw); err == nil {
			f.RepIDs = append(f.RepIDs, id)
		}
	}
	return f
}
