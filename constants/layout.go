package constants

// DocumentLayout identifies which known report format a document follows.
type DocumentLayout string

// Stable values (store these exact strings in DB).
const (
	LayoutCommission DocumentLayout = "COMMISSION"
	LayoutClaims     DocumentLayout = "CLAIMS"
	LayoutPremiumDue DocumentLayout = "PREMIUM_DUE"
	LayoutUnknown    DocumentLayout = "UNKNOWN"
)

func (l DocumentLayout) String() string { return string(l) }
