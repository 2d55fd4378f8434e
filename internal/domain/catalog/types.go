package catalog

import "strings"

type Temperature string

const (
	TempHot Temperature = "HOT"
	TempIce Temperature = "ICE"
)

func (t Temperature) String() string {
	return string(t)
}

func (t Temperature) IsValid() bool {
	switch t {
	case TempHot, TempIce:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentMobile PaymentMethod = "MOBILE"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod accepts the enum value in any letter case.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}

type Entry struct {
	name         string
	category     string
	basePrice    int64
	temperatures []Temperature
	phrases      []string
}

func (e Entry) Name() string     { return e.name }
func (e Entry) Category() string { return e.category }
func (e Entry) BasePrice() int64 { return e.basePrice }

func (e Entry) Temperatures() []Temperature {
	return append([]Temperature(nil), e.temperatures...)
}

// Phrases lists the lower-cased trigger phrases, display name first.
func (e Entry) Phrases() []string {
	return append([]string(nil), e.phrases...)
}

func (e Entry) Permits(t Temperature) bool {
	for _, p := range e.temperatures {
		if p == t {
			return true
		}
	}
	return false
}

// SoleTemperature reports the only permitted mode for single-temperature drinks.
func (e Entry) SoleTemperature() (Temperature, bool) {
	if len(e.temperatures) == 1 {
		return e.temperatures[0], true
	}
	return "", false
}

type SizeOption struct {
	name    string
	delta   int64
	phrases []string
}

func (s SizeOption) Name() string { return s.name }
func (s SizeOption) Delta() int64 { return s.delta }
func (s SizeOption) Phrases() []string {
	return append([]string(nil), s.phrases...)
}

type AddOn struct {
	name    string
	delta   int64
	phrases []string
}

func (a AddOn) Name() string { return a.name }
func (a AddOn) Delta() int64 { return a.delta }
func (a AddOn) Phrases() []string {
	return append([]string(nil), a.phrases...)
}

type PaymentOption struct {
	method  PaymentMethod
	phrases []string
}

func (p PaymentOption) Method() PaymentMethod { return p.method }
func (p PaymentOption) Phrases() []string {
	return append([]string(nil), p.phrases...)
}

// Vocabulary holds the ordered trigger phrase tables the utterance parser scans.
type Vocabulary struct {
	Hot         []string
	Ice         []string
	NoOptions   []string
	Affirmative []string
	Negative    []string
}

func (v Vocabulary) normalized() Vocabulary {
	return Vocabulary{
		Hot:         normalizePhrases(v.Hot),
		Ice:         normalizePhrases(v.Ice),
		NoOptions:   normalizePhrases(v.NoOptions),
		Affirmative: normalizePhrases(v.Affirmative),
		Negative:    normalizePhrases(v.Negative),
	}
}

func normalizePhrases(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
