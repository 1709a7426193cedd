// internal/domain/catalog/entity.go
package catalog

// UIType describes how an option group is selected
type UIType string

const (
	UITypeSingle UIType = "single"
	UITypeMulti  UIType = "multi"
)

// Product represents a menu product as served by the admin backend
type Product struct {
	ID          string    `json:"_id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
}

// Variant represents a sellable size/version of a product with an absolute price
type Variant struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	CostPrice int64  `json:"costPrice,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// Option represents a single add-on choice inside an option group
type Option struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	PriceDelta int64  `json:"priceDelta"`
	IsDefault  bool   `json:"isDefault"`
	SortOrder  int    `json:"sortOrder"`
}

// OptionGroup represents a group of add-on options (toppings, sugar level, ...)
type OptionGroup struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	UIType   UIType   `json:"uiType"`
	Required bool     `json:"required"`
	Options  []Option `json:"options"`
}

// ProductOptions is the resolved variant/option data for one product
type ProductOptions struct {
	Variants     []Variant     `json:"variants"`
	OptionGroups []OptionGroup `json:"optionGroups"`
}

// DefaultVariant returns the variant flagged as default, or the first
// variant when none is flagged. Returns nil for a product without variants.
func (po *ProductOptions) DefaultVariant() *Variant {
	for i := range po.Variants {
		if po.Variants[i].IsDefault {
			return &po.Variants[i]
		}
	}
	if len(po.Variants) > 0 {
		return &po.Variants[0]
	}
	return nil
}

// FindVariant looks up a variant by id
func (po *ProductOptions) FindVariant(variantID string) *Variant {
	for i := range po.Variants {
		if po.Variants[i].ID == variantID {
			return &po.Variants[i]
		}
	}
	return nil
}

// FindGroup looks up an option group by id
func (po *ProductOptions) FindGroup(groupID string) *OptionGroup {
	for i := range po.OptionGroups {
		if po.OptionGroups[i].ID == groupID {
			return &po.OptionGroups[i]
		}
	}
	return nil
}

// FindOption looks up an option by id within the group
func (g *OptionGroup) FindOption(optionID string) *Option {
	for i := range g.Options {
		if g.Options[i].ID == optionID {
			return &g.Options[i]
		}
	}
	return nil
}

// Categories derives the distinct category list from a product slice,
// preserving first-seen order
func Categories(products []Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
