package models

// Fixed option sets used by forms and validation. The funnel order of
// LeadStages is significant: dashboards render stages in this order.
var (
	Sectors = []string{
		"Oil & Gas / Petroleum Refining & Storage",
		"Power Generation",
		"Mining & Mineral Processing",
		"Steel & Metal Processing",
		"Cement & Building Materials",
		"Food & Beverage Manufacturing",
		"Cocoa & Agro-Processing",
		"Chemicals & Pharmaceuticals",
		"Textiles & Light Manufacturing",
		"LNG / LPG & Fuel Storage",
		"Water Treatment & Utilities",
		"Pulp & Paper / Printing",
		"Shipyards & Marine",
	}

	Regions = []string{
		"Greater Accra", "Ashanti", "Western", "Western North", "Central", "Eastern", "Volta", "Oti",
		"Northern", "Savannah", "North East", "Upper East", "Upper West", "Bono", "Bono East", "Ahafo",
	}

	ActionTypes = []string{"Call", "Email", "Meeting", "Proposal", "Follow-up", "Site Visit"}

	LeadStages = []string{"Lead", "Opportunity", "Client", "Lost"}

	CampaignTypes = []string{"Trade Show", "Email Campaign", "Event", "Digital Ads", "Outbound Push", "Other"}

	Roles = []string{"Admin", "Marketing Manager", "Sales Rep", "Viewer"}
)

func oneOf(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidSector(v string) bool       { return oneOf(Sectors, v) }
func ValidRegion(v string) bool       { return oneOf(Regions, v) }
func ValidActionType(v string) bool   { return oneOf(ActionTypes, v) }
func ValidLeadStage(v string) bool    { return oneOf(LeadStages, v) }
func ValidCampaignType(v string) bool { return oneOf(CampaignTypes, v) }
func ValidRole(v string) bool         { return oneOf(Roles, v) }
