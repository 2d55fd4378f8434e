//go:build unit

package session_test

import (
	"testing"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	"barista-bot/internal/domain/session"
	"barista-bot/internal/domain/utterance"
	"barista-bot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog *catalog.Catalog
	parser  *utterance.Parser
	machine *session.Machine
}

func newFixture() fixture {
	c := catalog.Default()
	return fixture{
		catalog: c,
		parser:  utterance.NewParser(c),
		machine: session.NewMachine(c, order.NewDefaultPriceCalculator(c)),
	}
}

func (f fixture) say(s session.Session, text string) (session.Session, session.Outcome) {
	return f.machine.Step(s, f.parser.Extract(text))
}

func TestSingleTemperatureDrinksSkipTemperature(t *testing.T) {
	f := newFixture()

	for _, entry := range f.catalog.Drinks() {
		sole, ok := entry.SoleTemperature()
		if !ok {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			next, out := f.machine.Step(session.New(), utterance.Partial{Drink: entry.Name()})
			assert.Equal(t, session.AwaitSize, next.State())
			assert.Equal(t, sole, next.Slots().Temperature)
			assert.Equal(t, session.PromptAskSize, out.Prompt)
			assert.True(t, out.Advanced)
		})
	}
}

func TestFullOrderScenario(t *testing.T) {
	f := newFixture()

	s, out := f.say(session.New(), "iced vanilla latte large extra shot")
	require.Equal(t, session.AwaitConfirm, s.State())
	slots := s.Slots()
	assert.Equal(t, "Vanilla Latte", slots.Drink)
	assert.Equal(t, catalog.TempIce, slots.Temperature)
	assert.Equal(t, catalog.SizeLarge, slots.Size)
	assert.Equal(t, []string{"Extra Shot"}, slots.AddOns)
	assert.Equal(t, int64(6500), out.Price)
	assert.Equal(t, session.PromptConfirm, out.Prompt)
	assert.Contains(t, f.machine.Render(out, s), "Vanilla Latte (ICE, Large) with Extra Shot")
	assert.Contains(t, f.machine.Render(out, s), "6500 won")

	s, out = f.say(s, "yes, card please")
	require.True(t, out.Finalize)
	assert.True(t, s.IsFresh(), "session resets once the order is complete")
	assert.Equal(t, catalog.PaymentCard, out.Order.PaymentMethod)
	assert.True(t, out.Order.Confirmed)
	assert.Equal(t, int64(6500), out.Price)
	assert.Equal(t, session.PromptCompleted, out.Prompt)
	assert.Contains(t, f.machine.Render(out, s), "by card")
}

func TestStepByStep(t *testing.T) {
	f := newFixture()
	s := session.New()

	steps := []struct {
		text   string
		state  session.State
		prompt session.PromptKind
	}{
		{text: "hmm, what do you have?", state: session.AwaitDrink, prompt: session.PromptAskDrink},
		{text: "americano", state: session.AwaitTemp, prompt: session.PromptAskTemperature},
		{text: "hot please", state: session.AwaitSize, prompt: session.PromptAskSize},
		{text: "regular", state: session.AwaitOptions, prompt: session.PromptAskOptions},
		{text: "no options", state: session.AwaitConfirm, prompt: session.PromptConfirm},
		{text: "yes", state: session.AwaitPayment, prompt: session.PromptAskPayment},
		{text: "cash or card?", state: session.AwaitPayment, prompt: session.PromptAmbiguousPayment},
	}
	for _, st := range steps {
		var out session.Outcome
		s, out = f.say(s, st.text)
		assert.Equal(t, st.state, s.State(), st.text)
		assert.Equal(t, st.prompt, out.Prompt, st.text)
	}

	s, out := f.say(s, "mobile")
	require.True(t, out.Finalize)
	assert.Equal(t, int64(4500), out.Price)
	assert.Equal(t, catalog.PaymentMobile, out.Order.PaymentMethod)
	assert.Empty(t, out.Order.AddOns)
	assert.True(t, s.IsFresh())
}

func TestAmbiguousTemperature(t *testing.T) {
	f := newFixture()

	s, out := f.say(session.New(), "hot iced americano")
	assert.Equal(t, session.AwaitTemp, s.State())
	assert.False(t, s.Slots().HasTemperature())
	assert.Equal(t, session.PromptAmbiguousTemperature, out.Prompt)
	assert.True(t, errs.Is(out.Recovered, errs.ErrParseAmbiguous))

	again, out := f.say(s, "either hot or iced")
	assert.Equal(t, session.AwaitTemp, again.State())
	assert.False(t, again.Slots().HasTemperature())
	assert.False(t, out.Advanced)
	assert.True(t, errs.Is(out.Recovered, errs.ErrParseAmbiguous))
}

func TestTemperatureNotServed(t *testing.T) {
	f := newFixture()
	s := session.Reconstruct(session.AwaitTemp, order.Slots{Drink: "Espresso"})

	next, out := f.say(s, "iced")
	assert.Equal(t, session.AwaitTemp, next.State())
	assert.Equal(t, session.PromptTemperatureNotServed, out.Prompt)
	assert.True(t, errs.Is(out.Recovered, errs.ErrUnknownItem))
	assert.Contains(t, f.machine.Render(out, next), "only served hot")
}

func TestUnknownDrinkStays(t *testing.T) {
	f := newFixture()

	s, out := f.say(session.New(), "a bubble tea")
	assert.Equal(t, session.AwaitDrink, s.State())
	assert.True(t, errs.Is(out.Recovered, errs.ErrUnknownItem))
	assert.True(t, s.IsFresh())
}

func TestRejectionEditsWholeOrder(t *testing.T) {
	f := newFixture()

	s, _ := f.say(session.New(), "iced vanilla latte large extra shot")
	require.Equal(t, session.AwaitConfirm, s.State())

	s, out := f.say(s, "no, change it")
	assert.Equal(t, session.AwaitDrink, s.State())
	assert.Equal(t, session.PromptEditOrder, out.Prompt)
	assert.Equal(t, catalog.SizeLarge, s.Slots().Size, "other slots stay as defaults")

	s, out = f.say(s, "cappuccino")
	assert.Equal(t, session.AwaitConfirm, s.State())
	slots := s.Slots()
	assert.Equal(t, "Cappuccino", slots.Drink)
	assert.Equal(t, catalog.TempHot, slots.Temperature, "iced is dropped for a hot-only drink")
	assert.Equal(t, []string{"Extra Shot"}, slots.AddOns)
	assert.Equal(t, int64(6000), out.Price)
}

func TestRejectionAsksTemperatureForFilledInMode(t *testing.T) {
	f := newFixture()

	s, _ := f.say(session.New(), "espresso")
	require.Equal(t, session.AwaitSize, s.State())
	s, _ = f.say(s, "large")
	s, _ = f.say(s, "no options")
	require.Equal(t, session.AwaitConfirm, s.State())
	s, _ = f.say(s, "no")
	require.Equal(t, session.AwaitDrink, s.State())

	s, out := f.say(s, "americano")
	assert.Equal(t, session.AwaitTemp, s.State())
	assert.Equal(t, session.PromptAskTemperature, out.Prompt)
	assert.Empty(t, s.Slots().Temperature)
	assert.Equal(t, catalog.SizeLarge, s.Slots().Size)

	s, _ = f.say(s, "iced")
	assert.Equal(t, session.AwaitConfirm, s.State())
	assert.Equal(t, catalog.TempIce, s.Slots().Temperature)
}

type failingPricer struct{}

func (failingPricer) Price(order.Slots) (int64, error) {
	return 0, errs.Wrap(errs.ErrUnknownItem, "price list unavailable")
}

func TestPricingFailureKeepsSlots(t *testing.T) {
	c := catalog.Default()
	parser := utterance.NewParser(c)
	machine := session.NewMachine(c, failingPricer{})

	s, _ := machine.Step(session.New(), parser.Extract("hot americano"))
	require.Equal(t, session.AwaitSize, s.State())

	next, out := machine.Step(s, parser.Extract("large"))
	assert.Equal(t, session.AwaitSize, next.State())
	assert.Equal(t, session.PromptAskSize, out.Prompt)
	assert.False(t, out.Advanced)
	assert.True(t, errs.Is(out.Recovered, errs.ErrUnknownItem))
	assert.Equal(t, "Americano", next.Slots().Drink)
	assert.Equal(t, catalog.TempHot, next.Slots().Temperature)
}

func TestAmbiguousConfirmation(t *testing.T) {
	f := newFixture()

	s, _ := f.say(session.New(), "hot americano regular")
	require.Equal(t, session.AwaitOptions, s.State())
	s, _ = f.say(s, "no options")
	require.Equal(t, session.AwaitConfirm, s.State())

	next, out := f.say(s, "yes no")
	assert.Equal(t, session.AwaitConfirm, next.State())
	assert.True(t, errs.Is(out.Recovered, errs.ErrParseAmbiguous))
}

func TestStepDoesNotMutateInput(t *testing.T) {
	f := newFixture()

	s, _ := f.say(session.New(), "iced americano large")
	require.Equal(t, session.AwaitOptions, s.State())
	before := s.Slots()

	_, _ = f.say(s, "whipped cream and hazelnut")
	assert.Equal(t, before, s.Slots())
	assert.Equal(t, session.AwaitOptions, s.State())
}
