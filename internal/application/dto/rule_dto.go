package dto

// SavePriceRuleRequest entrada para crear o actualizar una regla de precio.
type SavePriceRuleRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Formula       string   `json:"formula" validate:"required"`
	Categories    []string `json:"categories"`
	AllowBundles  bool     `json:"allow_bundles"`
	AllowDiscount bool     `json:"allow_discount"`
}
