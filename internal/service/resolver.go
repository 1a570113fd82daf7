package service

import (
	"fmt"
	"sort"
	"strings"

	"syncpos/internal/domain"

	"github.com/shopspring/decimal"
)

// ResolveCustomization prices one configured unit of a catalog item:
// base price plus the deltas of every selected option. The label joins
// selected option names, ", " within a group and " • " between groups
// (groups in name order). Selections naming a group or option the item
// does not declare are rejected outright.
func ResolveCustomization(item domain.MenuItem, selections domain.SelectedCustomization) (decimal.Decimal, string, error) {
	unitPrice := item.BasePrice
	if len(selections) == 0 {
		return unitPrice, "", nil
	}

	groups := make([]string, 0, len(selections))
	for group, opts := range selections {
		if len(opts) == 0 {
			continue
		}
		groups = append(groups, group)
	}
	sort.Strings(groups)

	labelParts := make([]string, 0, len(groups))
	for _, group := range groups {
		declared, ok := item.Customizations[group]
		if !ok {
			return decimal.Zero, "", fmt.Errorf("%w: group %q on item %q", ErrUnknownOption, group, item.ID)
		}

		names := make([]string, 0, len(selections[group]))
		for _, optName := range selections[group] {
			opt, ok := findOption(declared, optName)
			if !ok {
				return decimal.Zero, "", fmt.Errorf("%w: %q in group %q on item %q", ErrUnknownOption, optName, group, item.ID)
			}
			unitPrice = unitPrice.Add(opt.PriceDelta)
			names = append(names, opt.Name)
		}
		labelParts = append(labelParts, strings.Join(names, ", "))
	}

	return unitPrice, strings.Join(labelParts, " • "), nil
}

func findOption(declared []domain.CustomizationOption, name string) (domain.CustomizationOption, bool) {
	for _, opt := range declared {
		if opt.Name == name {
			return opt, true
		}
	}
	return domain.CustomizationOption{}, false
}
