package models

import "time"

// FilterSet is the sidebar filter state shared by the dashboard and
// report pages. Empty slices and empty dates mean "no constraint" and
// must not contribute a predicate to the generated query.
type FilterSet struct {
	Sectors []string `json:"sectors"`
	Regions []string `json:"regions"`
	RepIDs  []int    `json:"rep_ids"`
	Start   string   `json:"start"` // ISO date, inclusive
	End     string   `json:"end"`   // ISO date, inclusive
}

// DefaultFilterWindow is the sidebar default: the last 60 days
// through today.
func DefaultFilterWindow(now time.Time) (start, end string) {
	return now.AddDate(0, 0, -60).Format("2006-01-02"), now.Format("2006-01-02")
}

func (f FilterSet) IsZero() bool {
	return len(f.Sectors) == 0 && len(f.Regions) == 0 && len(f.RepIDs) == 0 && f.Start == "" && f.End == ""
}
