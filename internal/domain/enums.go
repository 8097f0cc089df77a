package domain

// BillingType tags who is ultimately invoiced for a line item. Aggregate
// totals are partitioned by this classification.
type BillingType string

const (
	BillingDirectToClient BillingType = "Direto ao Cliente"
	BillingInternalTeam   BillingType = "Equipe Interna"
	BillingThirdParty     BillingType = "Terceiros"
)

// ValidBillingTypes is the canonical set of accepted billing classifications.
var ValidBillingTypes = map[BillingType]bool{
	BillingDirectToClient: true,
	BillingInternalTeam:   true,
	BillingThirdParty:     true,
}

// IsValidBillingType returns true if the given value is a known classification.
func IsValidBillingType(b BillingType) bool {
	return ValidBillingTypes[b]
}

// AllBillingTypes returns the classifications in display order.
func AllBillingTypes() []BillingType {
	return []BillingType{BillingDirectToClient, BillingInternalTeam, BillingThirdParty}
}
