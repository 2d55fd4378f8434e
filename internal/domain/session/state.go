package session

type State string

const (
	AwaitDrink   State = "AWAIT_DRINK"
	AwaitTemp    State = "AWAIT_TEMP"
	AwaitSize    State = "AWAIT_SIZE"
	AwaitOptions State = "AWAIT_OPTIONS"
	AwaitConfirm State = "AWAIT_CONFIRM"
	AwaitPayment State = "AWAIT_PAYMENT"
	Complete     State = "COMPLETE"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case AwaitDrink, AwaitTemp, AwaitSize, AwaitOptions, AwaitConfirm, AwaitPayment, Complete:
		return true
	default:
		return false
	}
}

type PromptKind string

const (
	PromptAskDrink       PromptKind = "ask_drink"
	PromptAskTemperature PromptKind = "ask_temperature"
	PromptAskSize        PromptKind = "ask_size"
	PromptAskOptions     PromptKind = "ask_options"
	PromptConfirm        PromptKind = "confirm"
	PromptAskPayment     PromptKind = "ask_payment"
	PromptCompleted      PromptKind = "completed"
	// the order was placed but its payment could not be recorded
	PromptPaymentPending PromptKind = "payment_pending"

	// clarifications: the state did not advance
	PromptAmbiguousTemperature PromptKind = "ambiguous_temperature"
	PromptTemperatureNotServed PromptKind = "temperature_not_served"
	PromptAmbiguousPayment     PromptKind = "ambiguous_payment"
	PromptEditOrder            PromptKind = "edit_order"
)

func askFor(s State) PromptKind {
	switch s {
	case AwaitTemp:
		return PromptAskTemperature
	case AwaitSize:
		return PromptAskSize
	case AwaitOptions:
		return PromptAskOptions
	case AwaitConfirm:
		return PromptConfirm
	case AwaitPayment:
		return PromptAskPayment
	case Complete:
		return PromptCompleted
	default:
		return PromptAskDrink
	}
}
