package domain

import "fmt"

type VariationOption struct {
	Label      string `json:"label"`
	PriceDelta int64  `json:"price_delta"`
}

// Variations is the closed set of drink customizations the kiosk offers.
// The adjusted unit price is the base price plus the delta of the selected
// option per category; categories left unselected contribute nothing.
var Variations = map[string][]VariationOption{
	"size": {
		{Label: "Small", PriceDelta: 0},
		{Label: "Medium", PriceDelta: 500},
		{Label: "Large", PriceDelta: 1000},
	},
	"milk": {
		{Label: "None", PriceDelta: 0},
		{Label: "Condensed", PriceDelta: 0},
		{Label: "Fresh", PriceDelta: 300},
		{Label: "Oat", PriceDelta: 700},
	},
	"sweetness": {
		{Label: "Normal", PriceDelta: 0},
		{Label: "Less", PriceDelta: 0},
		{Label: "Extra", PriceDelta: 200},
	},
	"ice": {
		{Label: "Normal", PriceDelta: 0},
		{Label: "Less", PriceDelta: 0},
		{Label: "No Ice", PriceDelta: 0},
	},
}

func VariationDelta(category, label string) (int64, error) {
	options, ok := Variations[category]
	if !ok {
		return 0, fmt.Errorf("unknown variation category %q", category)
	}
	for _, opt := range options {
		if opt.Label == label {
			return opt.PriceDelta, nil
		}
	}
	return 0, fmt.Errorf("unknown option %q for variation %q", label, category)
}

// AdjustedUnitPrice applies the selected variation deltas to a base price.
func AdjustedUnitPrice(base int64, options map[string]string) (int64, error) {
	price := base
	for category, label := range options {
		delta, err := VariationDelta(category, label)
		if err != nil {
			return 0, err
		}
		price += delta
	}
	return price, nil
}
