package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"geronimocrm/internal/models"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestCsvParam(t *testing.T) {
	t.Run("repeated params", func(t *testing.T) {
		c := ctxWithQuery("sector=Power+Generation&sector=Shipyards+%26+Marine")
		assert.Equal(t, []string{"Power Generation", "Shipyards & Marine"}, csvParam(c, "sector"))
	})

	t.Run("comma separated values", func(t *testing.T) {
		c := ctxWithQuery("region=Ashanti,Volta")
		assert.Equal(t, []string{"Ashanti", "Volta"}, csvParam(c, "region"))
	})

	t.Run("blank pieces are dropped", func(t *testing.T) {
		c := ctxWithQuery("region=Ashanti,,%20")
		assert.Equal(t, []string{"Ashanti"}, csvParam(c, "region"))
	})

	t.Run("absent param", func(t *testing.T) {
		c := ctxWithQuery("other=1")
		assert.Nil(t, csvParam(c, "region"))
	})
}

func TestParseFilters(t *testing.T) {
	t.Run("defaults to the trailing 60 day window", func(t *testing.T) {
		c := ctxWithQuery("")
		f := parseFilters(c)

		wantStart, wantEnd := models.DefaultFilterWindow(time.Now())
		assert.Equal(t, wantStart, f.Start)
		assert.Equal(t, wantEnd, f.End)
		assert.Empty(t, f.Sectors)
		assert.Empty(t, f.Regions)
		assert.Empty(t, f.RepIDs)
	})

	t.Run("explicit empty dates drop the bounds", func(t *testing.T) {
		c := ctxWithQuery("start=&end=")
		f := parseFilters(c)
		assert.Equal(t, "", f.Start)
		assert.Equal(t, "", f.End)
	})

	t.Run("full query", func(t *testing.T) {
		c := ctxWithQuery("sector=Power+Generation&region=Volta,Ashanti&rep_id=3,7&start=2026-01-01&end=2026-02-01")
		f := parseFilters(c)
		assert.Equal(t, models.FilterSet{
			Sectors: []string{"Power Generation"},
			Regions: []string{"Volta", "Ashanti"},
			RepIDs:  []int{3, 7},
			Start:   "2026-01-01",
			End:     "2026-02-01",
		}, f)
	})

	t.Run("junk rep ids are skipped", func(t *testing.T) {
		c := ctxWithQuery("rep_id=3,abc&start=&end=")
		f := parseFilters(c)
		assert.Equal(t, []int{3}, f.RepIDs)
	})
}

func TestGetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", 7)
	c.Set("username", "kwame")
	c.Set("role", "Sales Rep")

	s := getSession(c)
	assert.Equal(t, models.Session{UserID: 7, Username: "kwame", Role: "Sales Rep"}, s)
	assert.False(t, s.IsAdmin())
}
