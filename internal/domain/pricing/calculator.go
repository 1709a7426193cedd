// internal/domain/pricing/calculator.go
package pricing

import (
	"errors"
	"fmt"

	"github.com/your-org/pos-terminal/internal/domain/catalog"
)

// ErrInvalidQuantity is returned when a line is priced with quantity <= 0
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// ChoiceMode describes how an option group was answered
type ChoiceMode string

const (
	ChoiceModeSingle ChoiceMode = "single"
	ChoiceModeMulti  ChoiceMode = "multi"
)

// OptionChoice is the answer for one option group: exactly one option id
// in single mode, zero or more in multi mode
type OptionChoice struct {
	Mode ChoiceMode `json:"mode"`
	ID   string     `json:"id,omitempty"`
	IDs  []string   `json:"ids,omitempty"`
}

// SingleChoice builds a single-mode choice
func SingleChoice(optionID string) OptionChoice {
	return OptionChoice{Mode: ChoiceModeSingle, ID: optionID}
}

// MultiChoice builds a multi-mode choice
func MultiChoice(optionIDs ...string) OptionChoice {
	return OptionChoice{Mode: ChoiceModeMulti, IDs: optionIDs}
}

// Selection captures a customer's customization of one product
type Selection struct {
	VariantID string                  `json:"variantId,omitempty"`
	Options   map[string]OptionChoice `json:"options,omitempty"`
	Quantity  int                     `json:"quantity"`
}

// SelectedOption is one priced option resolved against the product data,
// carrying the denormalized group/option snapshot an order line needs
type SelectedOption struct {
	GroupID    string `json:"optionGroupId"`
	GroupName  string `json:"optionGroupName"`
	OptionID   string `json:"optionId"`
	OptionName string `json:"optionName"`
	PriceDelta int64  `json:"priceDelta"`
}

// LineBreakdown is the full price decomposition of one cart line
type LineBreakdown struct {
	Variant   *catalog.Variant
	BasePrice int64
	Options   []SelectedOption
	Quantity  int
	LineTotal int64
}

// LineTotal computes the monetary total of one line: the selected
// variant's price plus all valid option deltas, multiplied by quantity.
// Unknown variant or option ids contribute zero rather than failing;
// the backend is the source of truth and menu data may lag it.
func LineTotal(resolved *catalog.ProductOptions, sel Selection) (int64, error) {
	breakdown, err := Breakdown(resolved, sel)
	if err != nil {
		return 0, err
	}
	return breakdown.LineTotal, nil
}

// Breakdown computes the per-line price decomposition shared by the live
// cart total and the order submission builder, so the two cannot drift.
func Breakdown(resolved *catalog.ProductOptions, sel Selection) (*LineBreakdown, error) {
	if sel.Quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, sel.Quantity)
	}

	breakdown := &LineBreakdown{Quantity: sel.Quantity}

	if sel.VariantID != "" {
		if variant := resolved.FindVariant(sel.VariantID); variant != nil {
			breakdown.Variant = variant
			breakdown.BasePrice = variant.Price
		}
	}

	// Walk the resolved groups in backend order so the flattened option
	// list is deterministic regardless of selection map iteration.
	var optionsDelta int64
	for i := range resolved.OptionGroups {
		group := &resolved.OptionGroups[i]
		choice, ok := sel.Options[group.ID]
		if !ok {
			continue
		}

		for _, optionID := range choice.optionIDs() {
			option := group.FindOption(optionID)
			if option == nil {
				// Unknown ids are ignored individually
				continue
			}
			optionsDelta += option.PriceDelta
			breakdown.Options = append(breakdown.Options, SelectedOption{
				GroupID:    group.ID,
				GroupName:  group.Name,
				OptionID:   option.ID,
				OptionName: option.Name,
				PriceDelta: option.PriceDelta,
			})
		}
	}

	breakdown.LineTotal = (breakdown.BasePrice + optionsDelta) * int64(sel.Quantity)
	return breakdown, nil
}

// optionIDs normalizes a choice to the list of selected option ids
func (c OptionChoice) optionIDs() []string {
	if c.Mode == ChoiceModeMulti {
		return c.IDs
	}
	if c.ID == "" {
		return nil
	}
	return []string{c.ID}
}
