package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type CartState struct {
	Items           []LineItem      `json:"items"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// CartCommand is the tagged-variant command set processed by ApplyCartCommand.
type CartCommand interface {
	isCartCommand()
}

type AddItem struct {
	Line LineItem
}

type RemoveItem struct {
	CartEntryID string
}

type SetQuantity struct {
	CartEntryID string
	Quantity    int
}

type SetDiscount struct {
	Percent decimal.Decimal
}

type ClearCart struct{}

func (AddItem) isCartCommand()     {}
func (RemoveItem) isCartCommand()  {}
func (SetQuantity) isCartCommand() {}
func (SetDiscount) isCartCommand() {}
func (ClearCart) isCartCommand()   {}

// ApplyCartCommand is the pure cart transition. An un-customized add merges
// into an existing un-customized line for the same menu item; a customized add
// always appends a distinct line. Unknown entry ids are no-ops. Lines never
// hold a quantity below one: SetQuantity with zero or less removes the line.
func ApplyCartCommand(state CartState, cmd CartCommand) CartState {
	switch c := cmd.(type) {
	case AddItem:
		if !c.Line.Customized() {
			for i, line := range state.Items {
				if line.MenuItemID == c.Line.MenuItemID && !line.Customized() {
					items := CloneLines(state.Items)
					items[i].Quantity += c.Line.Quantity
					state.Items = items
					return state
				}
			}
		}
		state.Items = append(CloneLines(state.Items), CloneLine(c.Line))

	case RemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, line := range state.Items {
			if line.CartEntryID != c.CartEntryID {
				items = append(items, line)
			}
		}
		state.Items = items

	case SetQuantity:
		if c.Quantity <= 0 {
			return ApplyCartCommand(state, RemoveItem{CartEntryID: c.CartEntryID})
		}
		items := CloneLines(state.Items)
		for i := range items {
			if items[i].CartEntryID == c.CartEntryID {
				items[i].Quantity = c.Quantity
			}
		}
		state.Items = items

	case SetDiscount:
		state.DiscountPercent = ClampDiscount(c.Percent)

	case ClearCart:
		state = CartState{Items: []LineItem{}}
	}

	return state
}

func ClampDiscount(p decimal.Decimal) decimal.Decimal {
	if p.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

func CloneLine(line LineItem) LineItem {
	if line.Customizations != nil {
		sel := make(SelectedCustomization, len(line.Customizations))
		for group, opts := range line.Customizations {
			sel[group] = append([]string(nil), opts...)
		}
		line.Customizations = sel
	}
	return line
}

func CloneLines(lines []LineItem) []LineItem {
	out := make([]LineItem, len(lines))
	for i, line := range lines {
		out[i] = CloneLine(line)
	}
	return out
}
