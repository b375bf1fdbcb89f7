package constants

// ItemSource tags which catalog tier produced a line item's price.
type ItemSource string

const (
	SourceTenant ItemSource = "tenant" // tenant-private price list entry
	SourceGlobal ItemSource = "global" // shared price list entry
	SourceCustom ItemSource = "custom" // no catalog match, model-estimated
)

// NormalizeItemSource maps a free-form source tag from the model onto a
// known tier; anything unrecognized is treated as custom.
func NormalizeItemSource(s string) ItemSource {
	switch ItemSource(s) {
	case SourceTenant, SourceGlobal:
		return ItemSource(s)
	}
	return SourceCustom
}
