package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilterWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	start, end := DefaultFilterWindow(now)
	assert.Equal(t, "2026-01-14", start)
	assert.Equal(t, "2026-03-15", end)
}

func TestFilterSetIsZero(t *testing.T) {
	assert.True(t, FilterSet{}.IsZero())
	assert.False(t, FilterSet{Sectors: []string{"Power Generation"}}.IsZero())
	assert.False(t, FilterSet{Start: "2026-01-01"}.IsZero())
	assert.False(t, FilterSet{RepIDs: []int{1}}.IsZero())
}

func TestOptionSets(t *testing.T) {
	assert.Equal(t, []string{"Lead", "Opportunity", "Client", "Lost"}, LeadStages)

	assert.True(t, ValidActionType("Site Visit"))
	assert.False(t, ValidActionType("Telepathy"))
	assert.True(t, ValidRole("Marketing Manager"))
	assert.False(t, ValidRole("Superuser"))
	assert.True(t, ValidRegion("Greater Accra"))
	assert.Len(t, Regions, 16)
	assert.Len(t, Sectors, 13)
}
