package session

import (
	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	"barista-bot/internal/domain/utterance"
	"barista-bot/internal/pkg/errs"
)

// Session is one customer's in-progress order. It is a value; Step never mutates its input.
type Session struct {
	state State
	slots order.Slots
}

func New() Session {
	return Session{state: AwaitDrink}
}

func Reconstruct(state State, slots order.Slots) Session {
	if !state.IsValid() || state == Complete {
		state = AwaitDrink
	}
	return Session{state: state, slots: slots.Clone()}
}

func (s Session) State() State       { return s.state }
func (s Session) Slots() order.Slots { return s.slots.Clone() }
func (s Session) IsFresh() bool      { return s.state == AwaitDrink && s.slots.IsEmpty() }
func (s Session) clone() Session     { return Session{state: s.state, slots: s.slots.Clone()} }

// Outcome describes what a turn did. When Finalize is set, Order holds the confirmed slots
// with a payment method and the returned Session is already reset.
type Outcome struct {
	Prompt    PromptKind
	Advanced  bool
	Finalize  bool
	Order     order.Slots
	Price     int64
	Recovered error
}

type Machine struct {
	catalog *catalog.Catalog
	pricer  order.PriceCalculator
}

func NewMachine(c *catalog.Catalog, pricer order.PriceCalculator) *Machine {
	return &Machine{catalog: c, pricer: pricer}
}

func (m *Machine) Step(current Session, p utterance.Partial) (Session, Outcome) {
	next := current.clone()

	switch current.state {
	case AwaitTemp:
		return m.stepTemperature(current, next, p)
	case AwaitSize:
		return m.stepSize(current, next, p)
	case AwaitOptions:
		return m.stepOptions(current, next, p)
	case AwaitConfirm:
		return m.stepConfirm(current, next, p)
	case AwaitPayment:
		return m.stepPayment(current, next, p)
	default:
		next.state = AwaitDrink
		return m.stepDrink(current, next, p)
	}
}

func (m *Machine) stepDrink(current, next Session, p utterance.Partial) (Session, Outcome) {
	if !p.HasDrink() {
		return current, m.stay(current, askFor(AwaitDrink), errs.Wrap(errs.ErrUnknownItem, "no drink on the menu was mentioned"))
	}
	entry, err := m.catalog.FindDrink(p.Drink)
	if err != nil {
		return current, m.stay(current, askFor(AwaitDrink), err)
	}

	next.slots.ChangeDrink(entry)
	next.slots.Confirmed = false
	next.slots.PaymentMethod = ""
	m.carryTemperature(&next.slots, p)
	m.carrySize(&next.slots, p)
	m.carryAddOns(&next.slots, p)
	return m.advance(current, next, p)
}

func (m *Machine) stepTemperature(current, next Session, p utterance.Partial) (Session, Outcome) {
	if err := p.TemperatureErr(); err != nil {
		return current, m.stay(current, PromptAmbiguousTemperature, err)
	}
	if !p.HasTemperature() {
		return current, m.stay(current, askFor(AwaitTemp), nil)
	}
	entry, err := m.catalog.FindDrink(next.slots.Drink)
	if err != nil {
		next.slots = order.Slots{}
		next.state = AwaitDrink
		return next, Outcome{Prompt: PromptAskDrink, Recovered: err}
	}
	if !entry.Permits(p.Temperature) {
		return current, m.stay(current, PromptTemperatureNotServed, errs.Wrapf(errs.ErrUnknownItem, "%s is not served %s", entry.Name(), p.Temperature))
	}

	next.slots.ChooseTemperature(p.Temperature)
	m.carrySize(&next.slots, p)
	m.carryAddOns(&next.slots, p)
	return m.advance(current, next, p)
}

func (m *Machine) stepSize(current, next Session, p utterance.Partial) (Session, Outcome) {
	if !p.HasSize() {
		return current, m.stay(current, askFor(AwaitSize), nil)
	}
	size, err := m.catalog.FindSize(p.Size)
	if err != nil {
		return current, m.stay(current, askFor(AwaitSize), err)
	}

	next.slots.Size = size.Name()
	m.carryAddOns(&next.slots, p)
	return m.advance(current, next, p)
}

func (m *Machine) stepOptions(current, next Session, p utterance.Partial) (Session, Outcome) {
	switch {
	case p.HasAddOns():
		next.slots.AddOns = nil
		next.slots.SelectAddOns(p.AddOns, m.catalog.AddOnRank)
	case p.NoOptions:
		next.slots.ClearAddOns()
	default:
		return current, m.stay(current, askFor(AwaitOptions), nil)
	}
	return m.advance(current, next, p)
}

func (m *Machine) stepConfirm(current, next Session, p utterance.Partial) (Session, Outcome) {
	switch p.Answer {
	case utterance.AnswerYes:
		next.slots.Confirmed = true
		if p.HasPayment() && !p.PaymentAmbiguous {
			next.slots.PaymentMethod = p.Payment
		}
		return m.advance(current, next, p)
	case utterance.AnswerNo:
		// full-order edit: the drink is asked again, the other slots stay as defaults
		next.slots.Confirmed = false
		next.slots.PaymentMethod = ""
		next.state = AwaitDrink
		return next, Outcome{Prompt: PromptEditOrder, Advanced: true}
	case utterance.AnswerAmbiguous:
		return current, m.stay(current, PromptConfirm, errs.Wrap(errs.ErrParseAmbiguous, "both yes and no were heard"))
	default:
		return current, m.stay(current, PromptConfirm, nil)
	}
}

func (m *Machine) stepPayment(current, next Session, p utterance.Partial) (Session, Outcome) {
	if err := p.PaymentErr(); err != nil {
		return current, m.stay(current, PromptAmbiguousPayment, err)
	}
	if !p.HasPayment() {
		return current, m.stay(current, askFor(AwaitPayment), nil)
	}
	next.slots.PaymentMethod = p.Payment
	return m.advance(current, next, p)
}

func (m *Machine) carryTemperature(slots *order.Slots, p utterance.Partial) {
	if !p.HasTemperature() {
		return
	}
	entry, err := m.catalog.FindDrink(slots.Drink)
	if err != nil || !entry.Permits(p.Temperature) {
		return
	}
	slots.ChooseTemperature(p.Temperature)
}

func (m *Machine) carrySize(slots *order.Slots, p utterance.Partial) {
	if !p.HasSize() {
		return
	}
	if size, err := m.catalog.FindSize(p.Size); err == nil {
		slots.Size = size.Name()
	}
}

func (m *Machine) carryAddOns(slots *order.Slots, p utterance.Partial) {
	if !p.HasAddOns() {
		return
	}
	slots.AddOns = nil
	slots.SelectAddOns(p.AddOns, m.catalog.AddOnRank)
}

// advance moves to the first state whose slot is still missing. Slots that cannot be
// priced leave the current session in place and re-ask its question.
func (m *Machine) advance(current, next Session, p utterance.Partial) (Session, Outcome) {
	next.state = firstMissing(next.slots)
	out := Outcome{Prompt: askFor(next.state), Advanced: true}

	if next.state == AwaitTemp && p.TempAmbiguous {
		out.Prompt = PromptAmbiguousTemperature
		out.Recovered = p.TemperatureErr()
	}

	if next.slots.IsPriceable() {
		price, err := m.pricer.Price(next.slots)
		if err != nil {
			return current, m.stay(current, askFor(current.state), err)
		}
		out.Price = price
	}

	if next.state == Complete {
		out.Finalize = true
		out.Order = next.slots.Clone()
		return New(), out
	}
	return next, out
}

func (m *Machine) stay(current Session, prompt PromptKind, recovered error) Outcome {
	out := Outcome{Prompt: prompt, Recovered: recovered}
	if current.slots.IsPriceable() {
		if price, err := m.pricer.Price(current.slots); err == nil {
			out.Price = price
		}
	}
	return out
}

func firstMissing(s order.Slots) State {
	switch {
	case !s.HasDrink():
		return AwaitDrink
	case !s.HasTemperature():
		return AwaitTemp
	case !s.HasSize():
		return AwaitSize
	case !s.OptionsAnswered:
		return AwaitOptions
	case !s.Confirmed:
		return AwaitConfirm
	case !s.HasPayment():
		return AwaitPayment
	default:
		return Complete
	}
}
