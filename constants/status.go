package constants

// OfferStatus is the canonical status for rows in offers.
type OfferStatus string

// Stable values (store these exact strings in DB).
const (
	OfferStatusDraft    OfferStatus = "draft"    // freshly generated, not yet sent
	OfferStatusSent     OfferStatus = "sent"     // delivered to the customer
	OfferStatusAccepted OfferStatus = "accepted" // customer accepted
	OfferStatusRejected OfferStatus = "rejected" // customer declined
)

// OfferValidityDays is how long a generated offer stays valid.
const OfferValidityDays = 30
