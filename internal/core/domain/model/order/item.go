package order

import (
	"errors"
	"fmt"
	"strings"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
	"freshdispatch/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a zero Item is used.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")

// Item is one line of an order.
type Item struct {
	name        string
	quantity    int
	unitPrice   kernel.Money
	prepMinutes int
	guard       guard.ConstructorGuard
}

// NewItem validates a line: a non-blank name, a positive quantity and
// non-negative price and preparation estimate.
func NewItem(name string, quantity int, unitPrice kernel.Money, prepMinutes int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setPrepMinutes(prepMinutes),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string            { return i.name }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) PrepMinutes() int        { return i.prepMinutes }

// LineTotal is quantity times unit price.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice * kernel.Money(i.quantity)
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("item unit price", fmt.Errorf("%d is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setPrepMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item prep minutes", fmt.Errorf("%d is negative", minutes))
	}
	i.prepMinutes = minutes
	return nil
}

func countItems(items []Item) int {
	n := 0
	for _, item := range items {
		n += item.quantity
	}
	return n
}

func subtotal(items []Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
