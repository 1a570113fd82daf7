package service

import (
	"fmt"
	"strings"
	"time"

	"syncpos/internal/domain"
)

// RenderKOT renders the plain-text kitchen order ticket for the current cart.
// Presentation only; no prices, the kitchen does not need them.
func RenderKOT(orderNumber, table string, at time.Time, lines []domain.LineItem) string {
	var b strings.Builder

	b.WriteString("KITCHEN ORDER TICKET\n")
	b.WriteString("====================\n")
	fmt.Fprintf(&b, "Order: %s\n", orderNumber)
	fmt.Fprintf(&b, "Table: %s\n", table)
	fmt.Fprintf(&b, "Time:  %s\n", at.Format("02 Jan 2006 15:04"))
	b.WriteString("--------------------\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "%dx %s\n", line.Quantity, line.Name)
		if line.CustomizationLabel != "" {
			fmt.Fprintf(&b, "   %s\n", line.CustomizationLabel)
		}
		if line.SpecialInstructions != "" {
			fmt.Fprintf(&b, "   ** %s\n", line.SpecialInstructions)
		}
	}

	b.WriteString("--------------------\n")
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	fmt.Fprintf(&b, "Items: %d\n", total)
	return b.String()
}
