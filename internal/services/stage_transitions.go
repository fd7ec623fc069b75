package services

import "geronimocrm/internal/models"

// stageIndex maps each funnel stage to its position in the fixed
// order [Lead, Opportunity, Client, Lost].
func stageIndex(stage string) int {
	for i, s := range models.LeadStages {
		if s == stage {
			return i
		}
	}
	return -1
}

// canAdvanceStage allows forward movement through the funnel and a
// move to Lost from any non-final stage. Client and Lost are final.
func canAdvanceStage(current, to string) bool {
	ci, ti := stageIndex(current), stageIndex(to)
	if ti < 0 {
		return false
	}
	if current == "" {
		// no recorded stage yet, any valid stage is a start
		return true
	}
	if ci < 0 {
		return false
	}
	if current == "Client" || current == "Lost" {
		return false
	}
	if to == "Lost" {
		return true
	}
	return ti > ci
}
