package order

import (
	"sort"

	"barista-bot/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

// Slots is the in-progress order of one conversation. Empty strings mean "not set yet".
type Slots struct {
	Drink           string
	Temperature     catalog.Temperature
	TempAutoFilled  bool
	Size            string
	AddOns          []string
	OptionsAnswered bool
	Confirmed       bool
	PaymentMethod   catalog.PaymentMethod
}

func (s Slots) HasDrink() bool       { return s.Drink != "" }
func (s Slots) HasTemperature() bool { return s.Temperature != "" }
func (s Slots) HasSize() bool        { return s.Size != "" }
func (s Slots) HasPayment() bool     { return s.PaymentMethod != "" }

// IsPriceable reports whether drink, temperature and size are all set.
func (s Slots) IsPriceable() bool {
	return s.HasDrink() && s.HasTemperature() && s.HasSize()
}

func (s Slots) IsEmpty() bool {
	return !s.HasDrink() && !s.HasTemperature() && !s.HasSize() && len(s.AddOns) == 0 &&
		!s.OptionsAnswered && !s.Confirmed && !s.HasPayment()
}

// Clone returns a deep copy so a turn can be computed without touching the live session.
func (s Slots) Clone() Slots {
	var out Slots
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		out = s
		out.AddOns = append([]string(nil), s.AddOns...)
	}
	return out
}

// SelectAddOns merges names into the add-on set, ignoring repeats, and keeps catalog order.
func (s *Slots) SelectAddOns(names []string, rank func(string) int) {
	seen := make(map[string]struct{}, len(s.AddOns)+len(names))
	merged := make([]string, 0, len(s.AddOns)+len(names))
	for _, n := range append(append([]string(nil), s.AddOns...), names...) {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		merged = append(merged, n)
	}
	if rank != nil {
		sort.SliceStable(merged, func(i, j int) bool { return rank(merged[i]) < rank(merged[j]) })
	}
	s.AddOns = merged
	s.OptionsAnswered = true
}

func (s *Slots) ClearAddOns() {
	s.AddOns = nil
	s.OptionsAnswered = true
}

// ChangeDrink replaces the drink and drops a temperature the new drink cannot be served at.
// A single-temperature drink gets its only mode filled in. A filled-in mode is dropped
// when the next drink offers a choice, since the customer never picked it.
func (s *Slots) ChangeDrink(entry catalog.Entry) {
	s.Drink = entry.Name()
	if sole, ok := entry.SoleTemperature(); ok {
		s.Temperature = sole
		s.TempAutoFilled = true
		return
	}
	if s.TempAutoFilled || (s.HasTemperature() && !entry.Permits(s.Temperature)) {
		s.Temperature = ""
	}
	s.TempAutoFilled = false
}

// ChooseTemperature records a temperature the customer asked for.
func (s *Slots) ChooseTemperature(t catalog.Temperature) {
	s.Temperature = t
	s.TempAutoFilled = false
}
