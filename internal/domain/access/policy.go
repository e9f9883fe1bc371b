package access

// permitted is the static role table. There is no hierarchy: admin does not
// imply user, so buy is user-only and create is admin-only.
var permitted = map[Operation][]Role{
	ListPaintings:     {RoleUser, RoleAdmin},
	CreatePainting:    {RoleAdmin},
	ReplacePainting:   {RoleAdmin},
	PatchPainting:     {RoleAdmin},
	BuyPainting:       {RoleUser},
	ListSoldPaintings: {RoleAdmin},
}

// Allowed reports whether the asserted role may perform the operation.
// Unknown roles and unknown operations both deny.
func Allowed(role Role, op Operation) bool {
	for _, r := range permitted[op] {
		if r == role {
			return true
		}
	}
	return false
}
