package session

import (
	"fmt"
	"strings"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
)

// Render turns an outcome into the text shown to the customer. It is deterministic so
// the same turn always produces the same prompt.
func (m *Machine) Render(out Outcome, s Session) string {
	slots := s.slots
	if out.Finalize {
		slots = out.Order
	}

	switch out.Prompt {
	case PromptAskDrink:
		return "What would you like to drink? We have " + m.drinkList() + "."
	case PromptAskTemperature:
		return fmt.Sprintf("Would you like your %s hot or iced?", slots.Drink)
	case PromptAmbiguousTemperature:
		return fmt.Sprintf("I heard both hot and iced. Which one would you like for your %s?", slots.Drink)
	case PromptTemperatureNotServed:
		return fmt.Sprintf("Sorry, %s is only served %s. Which temperature would you like?", slots.Drink, m.temperatureList(slots.Drink))
	case PromptAskSize:
		return "Which size would you like? " + m.sizeList() + "."
	case PromptAskOptions:
		return "Any extras? " + m.addOnList() + ". Say \"no options\" if you don't need any."
	case PromptConfirm:
		return fmt.Sprintf("Your order: %s. Total %s. Shall I place it?", Summary(slots), Won(out.Price))
	case PromptEditOrder:
		return "No problem, let's fix the order. Which drink would you like?"
	case PromptAskPayment:
		return "How would you like to pay? Cash, card or mobile."
	case PromptAmbiguousPayment:
		return "Please choose just one payment method: cash, card or mobile."
	case PromptCompleted:
		return fmt.Sprintf("Your %s order is placed. Paid %s by %s. Thank you!", Summary(slots), Won(out.Price), strings.ToLower(string(slots.PaymentMethod)))
	case PromptPaymentPending:
		return fmt.Sprintf("Your %s order is placed, but the %s payment of %s was not recorded. Please settle it at the counter.", Summary(slots), strings.ToLower(string(slots.PaymentMethod)), Won(out.Price))
	default:
		return "Sorry, I didn't catch that."
	}
}

// Summary reads like "Vanilla Latte (ICE, Large) with Extra Shot".
func Summary(s order.Slots) string {
	var b strings.Builder
	b.WriteString(s.Drink)
	var attrs []string
	if s.Temperature != "" {
		attrs = append(attrs, string(s.Temperature))
	}
	if s.Size != "" {
		attrs = append(attrs, s.Size)
	}
	if len(attrs) > 0 {
		b.WriteString(" (" + strings.Join(attrs, ", ") + ")")
	}
	if len(s.AddOns) > 0 {
		b.WriteString(" with " + strings.Join(s.AddOns, ", "))
	}
	return b.String()
}

func Won(amount int64) string {
	return fmt.Sprintf("%d won", amount)
}

func (m *Machine) drinkList() string {
	drinks := m.catalog.Drinks()
	names := make([]string, 0, len(drinks))
	for _, d := range drinks {
		names = append(names, d.Name())
	}
	return strings.Join(names, ", ")
}

func (m *Machine) temperatureList(drink string) string {
	temps, err := m.catalog.PermittedTemperatures(drink)
	if err != nil {
		return "as listed on the menu"
	}
	parts := make([]string, 0, len(temps))
	for _, t := range temps {
		parts = append(parts, temperatureWord(t))
	}
	return strings.Join(parts, " or ")
}

func temperatureWord(t catalog.Temperature) string {
	if t == catalog.TempIce {
		return "iced"
	}
	return "hot"
}

func (m *Machine) sizeList() string {
	sizes := m.catalog.Sizes()
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		if s.Delta() == 0 {
			parts = append(parts, s.Name())
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (+%d)", s.Name(), s.Delta()))
	}
	return strings.Join(parts, " or ")
}

func (m *Machine) addOnList() string {
	addOns := m.catalog.AddOns()
	parts := make([]string, 0, len(addOns))
	for _, a := range addOns {
		parts = append(parts, fmt.Sprintf("%s (+%d)", a.Name(), a.Delta()))
	}
	return strings.Join(parts, ", ")
}
