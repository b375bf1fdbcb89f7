package entity

// PriceEntry is one priced task row, either tenant-scoped or global.
// Identity is the (Category, Task) pair; matches are exact and case-sensitive.
type PriceEntry struct {
	Category     string  `json:"category"`
	Task         string  `json:"task"`
	Unit         string  `json:"unit"`
	LaborCost    float64 `json:"labor_cost"`
	MaterialCost float64 `json:"material_cost"`
}

// TaskRef is the unpriced view of a catalog row, used to build the prompt
// catalog section. Source tells the model which tier the row came from.
type TaskRef struct {
	Category string `json:"category"`
	Task     string `json:"task"`
	Unit     string `json:"unit"`
	Source   string `json:"source"`
}
