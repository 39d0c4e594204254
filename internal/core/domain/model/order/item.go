package order

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Item is one order line. Prices are kept in minor currency units.
type Item struct {
	productRef     string
	quantity       int
	unitPriceMinor int64
}

// NewItem validates a non-empty product reference, a positive quantity and a
// non-negative unit price.
func NewItem(productRef string, quantity int, unitPriceMinor int64) (Item, error) {
	item := Item{}
	if err := errors.Join(
		item.setProductRef(productRef),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPriceMinor),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) ProductRef() string {
	return i.productRef
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPriceMinor() int64 {
	return i.unitPriceMinor
}

// SubtotalMinor is quantity × unit price.
func (i Item) SubtotalMinor() int64 {
	return int64(i.quantity) * i.unitPriceMinor
}

func (i *Item) setProductRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return errs.NewValueIsRequiredError("productRef")
	}
	i.productRef = strings.TrimSpace(ref)
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", price))
	}
	i.unitPriceMinor = price
	return nil
}
