package catalog

import (
	"strings"

	"barista-bot/internal/pkg/errs"
)

type DrinkSpec struct {
	Name         string
	Category     string
	BasePrice    int64
	Temperatures []Temperature
	Phrases      []string
}

type PricedSpec struct {
	Name    string
	Delta   int64
	Phrases []string
}

type PaymentSpec struct {
	Method  PaymentMethod
	Phrases []string
}

type Spec struct {
	Drinks     []DrinkSpec
	Sizes      []PricedSpec
	AddOns     []PricedSpec
	Payments   []PaymentSpec
	Vocabulary Vocabulary
}

// Catalog is immutable after New; every accessor returns copies.
type Catalog struct {
	categories []string
	drinks     []Entry
	sizes      []SizeOption
	addOns     []AddOn
	payments   []PaymentOption
	vocabulary Vocabulary
}

func New(spec Spec) (*Catalog, error) {
	c := &Catalog{vocabulary: spec.Vocabulary.normalized()}

	if len(spec.Drinks) == 0 {
		return nil, errs.New("catalog must declare at least one drink")
	}
	seenDrink := make(map[string]struct{}, len(spec.Drinks))
	seenCategory := make(map[string]struct{})
	for _, d := range spec.Drinks {
		entry, err := newEntry(d)
		if err != nil {
			return nil, err
		}
		key := entry.category + "/" + strings.ToLower(entry.name)
		if _, dup := seenDrink[key]; dup {
			return nil, errs.New("duplicate drink " + d.Name + " in category " + d.Category)
		}
		seenDrink[key] = struct{}{}
		if _, ok := seenCategory[entry.category]; !ok {
			seenCategory[entry.category] = struct{}{}
			c.categories = append(c.categories, entry.category)
		}
		c.drinks = append(c.drinks, entry)
	}

	if len(spec.Sizes) == 0 {
		return nil, errs.New("catalog must declare at least one size")
	}
	for _, s := range spec.Sizes {
		if strings.TrimSpace(s.Name) == "" {
			return nil, errs.New("size name must not be empty")
		}
		c.sizes = append(c.sizes, SizeOption{name: s.Name, delta: s.Delta, phrases: withName(s.Name, s.Phrases)})
	}

	for _, a := range spec.AddOns {
		if strings.TrimSpace(a.Name) == "" {
			return nil, errs.New("add-on name must not be empty")
		}
		if a.Delta < 0 {
			return nil, errs.New("add-on " + a.Name + " has a negative price delta")
		}
		c.addOns = append(c.addOns, AddOn{name: a.Name, delta: a.Delta, phrases: withName(a.Name, a.Phrases)})
	}

	for _, p := range spec.Payments {
		if !p.Method.IsValid() {
			return nil, errs.New("unsupported payment method " + string(p.Method))
		}
		c.payments = append(c.payments, PaymentOption{method: p.Method, phrases: withName(string(p.Method), p.Phrases)})
	}

	return c, nil
}

func newEntry(d DrinkSpec) (Entry, error) {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Category) == "" {
		return Entry{}, errs.New("drink and category names must not be empty")
	}
	if d.BasePrice < 0 {
		return Entry{}, errs.New("drink " + d.Name + " has a negative base price")
	}
	if len(d.Temperatures) == 0 {
		return Entry{}, errs.New("drink " + d.Name + " permits no temperature")
	}
	temps := make([]Temperature, 0, len(d.Temperatures))
	for _, t := range d.Temperatures {
		if !t.IsValid() {
			return Entry{}, errs.New("drink " + d.Name + " has an invalid temperature " + string(t))
		}
		dup := false
		for _, existing := range temps {
			if existing == t {
				dup = true
			}
		}
		if !dup {
			temps = append(temps, t)
		}
	}
	return Entry{
		name:         d.Name,
		category:     d.Category,
		basePrice:    d.BasePrice,
		temperatures: temps,
		phrases:      withName(d.Name, d.Phrases),
	}, nil
}

func withName(name string, phrases []string) []string {
	return normalizePhrases(append([]string{name}, phrases...))
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (c *Catalog) FindDrink(name string) (Entry, error) {
	for _, d := range c.drinks {
		if sameName(d.name, name) {
			return d, nil
		}
	}
	return Entry{}, errs.Wrapf(errs.ErrUnknownItem, "drink %q", name)
}

func (c *Catalog) PermittedTemperatures(drink string) ([]Temperature, error) {
	entry, err := c.FindDrink(drink)
	if err != nil {
		return nil, err
	}
	return entry.Temperatures(), nil
}

func (c *Catalog) FindSize(name string) (SizeOption, error) {
	for _, s := range c.sizes {
		if sameName(s.name, name) {
			return s, nil
		}
	}
	return SizeOption{}, errs.Wrapf(errs.ErrInvalidSize, "size %q", name)
}

func (c *Catalog) SizeDelta(name string) (int64, error) {
	s, err := c.FindSize(name)
	if err != nil {
		return 0, err
	}
	return s.delta, nil
}

func (c *Catalog) FindAddOn(name string) (AddOn, error) {
	for _, a := range c.addOns {
		if sameName(a.name, name) {
			return a, nil
		}
	}
	return AddOn{}, errs.Wrapf(errs.ErrUnknownItem, "add-on %q", name)
}

func (c *Catalog) AddOnDelta(name string) (int64, error) {
	a, err := c.FindAddOn(name)
	if err != nil {
		return 0, err
	}
	return a.delta, nil
}

// AddOnRank orders add-ons by declaration; unknown names sort last.
func (c *Catalog) AddOnRank(name string) int {
	for i, a := range c.addOns {
		if sameName(a.name, name) {
			return i
		}
	}
	return len(c.addOns)
}

func (c *Catalog) Categories() []string { return append([]string(nil), c.categories...) }
func (c *Catalog) Drinks() []Entry      { return append([]Entry(nil), c.drinks...) }
func (c *Catalog) Sizes() []SizeOption  { return append([]SizeOption(nil), c.sizes...) }
func (c *Catalog) AddOns() []AddOn      { return append([]AddOn(nil), c.addOns...) }

func (c *Catalog) Payments() []PaymentOption {
	return append([]PaymentOption(nil), c.payments...)
}

func (c *Catalog) Vocabulary() Vocabulary {
	v := c.vocabulary
	return Vocabulary{
		Hot:         append([]string(nil), v.Hot...),
		Ice:         append([]string(nil), v.Ice...),
		NoOptions:   append([]string(nil), v.NoOptions...),
		Affirmative: append([]string(nil), v.Affirmative...),
		Negative:    append([]string(nil), v.Negative...),
	}
}

func (c *Catalog) DrinksIn(category string) []Entry {
	var out []Entry
	for _, d := range c.drinks {
		if d.category == category {
			out = append(out, d)
		}
	}
	return out
}
