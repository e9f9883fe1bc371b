package access

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Operation string

const (
	ListPaintings     Operation = "list_paintings"
	CreatePainting    Operation = "create_painting"
	ReplacePainting   Operation = "replace_painting"
	PatchPainting     Operation = "patch_painting"
	BuyPainting       Operation = "buy_painting"
	ListSoldPaintings Operation = "list_sold_paintings"
)
