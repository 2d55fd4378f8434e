package order

import (
	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/pkg/errs"
)

type PriceCalculator interface {
	Price(slots Slots) (int64, error)
}

type DefaultPriceCalculator struct {
	catalog *catalog.Catalog
}

func NewDefaultPriceCalculator(c *catalog.Catalog) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{catalog: c}
}

// Price = base price + size delta + each distinct add-on once.
func (pc *DefaultPriceCalculator) Price(slots Slots) (int64, error) {
	if !slots.IsPriceable() {
		return 0, errs.Wrap(errs.ErrIncompleteOrder, "drink, temperature and size are required")
	}

	drink, err := pc.catalog.FindDrink(slots.Drink)
	if err != nil {
		return 0, err
	}
	if !drink.Permits(slots.Temperature) {
		return 0, errs.Wrapf(errs.ErrIncompleteOrder, "%s is not served %s", drink.Name(), slots.Temperature)
	}

	sizeDelta, err := pc.catalog.SizeDelta(slots.Size)
	if err != nil {
		return 0, err
	}

	total := drink.BasePrice() + sizeDelta
	seen := make(map[string]struct{}, len(slots.AddOns))
	for _, name := range slots.AddOns {
		a, err := pc.catalog.FindAddOn(name)
		if err != nil {
			return 0, err
		}
		if _, dup := seen[a.Name()]; dup {
			continue
		}
		seen[a.Name()] = struct{}{}
		total += a.Delta()
	}
	return total, nil
}
