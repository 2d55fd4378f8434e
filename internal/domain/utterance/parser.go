package utterance

import (
	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/pkg/errs"
)

type Answer int

const (
	AnswerNone Answer = iota
	AnswerYes
	AnswerNo
	AnswerAmbiguous
)

// Partial is what one utterance says about each slot. Zero values mean "not found";
// NoOptions is the explicit "nothing extra" answer and is distinct from AddOns being nil.
type Partial struct {
	Drink            string
	Temperature      catalog.Temperature
	TempAmbiguous    bool
	Size             string
	AddOns           []string
	NoOptions        bool
	Payment          catalog.PaymentMethod
	PaymentAmbiguous bool
	Answer           Answer
}

func (p Partial) HasDrink() bool       { return p.Drink != "" }
func (p Partial) HasTemperature() bool { return p.Temperature != "" }
func (p Partial) HasSize() bool        { return p.Size != "" }
func (p Partial) HasAddOns() bool      { return len(p.AddOns) > 0 }
func (p Partial) HasPayment() bool     { return p.Payment != "" }

// TemperatureErr is ErrParseAmbiguous when both hot and iced signals were heard.
func (p Partial) TemperatureErr() error {
	if p.TempAmbiguous {
		return errs.Wrap(errs.ErrParseAmbiguous, "both hot and iced requested")
	}
	return nil
}

func (p Partial) PaymentErr() error {
	if p.PaymentAmbiguous {
		return errs.Wrap(errs.ErrParseAmbiguous, "more than one payment method mentioned")
	}
	return nil
}

// Parser is a pure function of its input and the catalog.
type Parser struct {
	drinks     []catalog.Entry
	sizes      []catalog.SizeOption
	addOns     []catalog.AddOn
	payments   []catalog.PaymentOption
	vocabulary catalog.Vocabulary
}

func NewParser(c *catalog.Catalog) *Parser {
	return &Parser{
		drinks:     c.Drinks(),
		sizes:      c.Sizes(),
		addOns:     c.AddOns(),
		payments:   c.Payments(),
		vocabulary: c.Vocabulary(),
	}
}

func (p *Parser) Extract(text string) Partial {
	t := normalize(text)
	var out Partial
	if t == "" {
		return out
	}

	out.Drink = p.extractDrink(t)
	out.Temperature, out.TempAmbiguous = p.extractTemperature(t)
	out.Size = p.extractSize(t)
	out.AddOns = p.extractAddOns(t)
	out.NoOptions = containsAnyWord(t, p.vocabulary.NoOptions)
	out.Payment, out.PaymentAmbiguous = p.extractPayment(t)
	out.Answer = p.extractAnswer(t)
	return out
}

// first catalog entry wins, in declaration order
func (p *Parser) extractDrink(t string) string {
	for _, d := range p.drinks {
		if containsAny(t, d.Phrases()) {
			return d.Name()
		}
	}
	return ""
}

func (p *Parser) extractTemperature(t string) (catalog.Temperature, bool) {
	hot := containsAnyWord(t, p.vocabulary.Hot)
	ice := containsAnyWord(t, p.vocabulary.Ice)
	switch {
	case hot && ice:
		return "", true
	case hot:
		return catalog.TempHot, false
	case ice:
		return catalog.TempIce, false
	default:
		return "", false
	}
}

func (p *Parser) extractSize(t string) string {
	for i := len(p.sizes) - 1; i >= 0; i-- {
		if containsAny(t, p.sizes[i].Phrases()) {
			return p.sizes[i].Name()
		}
	}
	return ""
}

func (p *Parser) extractAddOns(t string) []string {
	var found []string
	for _, a := range p.addOns {
		if containsAny(t, a.Phrases()) {
			found = append(found, a.Name())
		}
	}
	return found
}

func (p *Parser) extractPayment(t string) (catalog.PaymentMethod, bool) {
	var found catalog.PaymentMethod
	for _, opt := range p.payments {
		if !containsAny(t, opt.Phrases()) {
			continue
		}
		if found != "" {
			return "", true
		}
		found = opt.Method()
	}
	return found, false
}

func (p *Parser) extractAnswer(t string) Answer {
	yes := containsAnyWord(t, p.vocabulary.Affirmative)
	no := containsAnyWord(t, p.vocabulary.Negative)
	switch {
	case yes && no:
		return AnswerAmbiguous
	case yes:
		return AnswerYes
	case no:
		return AnswerNo
	default:
		return AnswerNone
	}
}
