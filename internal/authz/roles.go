package authz

const (
	RoleAdmin            = "Admin"
	RoleMarketingManager = "Marketing Manager"
	RoleSalesRep         = "Sales Rep"
	RoleViewer           = "Viewer"
)

func IsElevated(role string) bool {
	return role == RoleAdmin || role == RoleMarketingManager
}

func IsReadOnly(role string) bool {
	return role == RoleViewer
}
