package catalog

const (
	CategoryCoffee    = "Coffee"
	CategoryNonCoffee = "Non-coffee"

	SizeRegular = "Regular"
	SizeLarge   = "Large"
)

var hotAndIce = []Temperature{TempHot, TempIce}
var hotOnly = []Temperature{TempHot}

// DefaultSpec is the café menu. Prices are in won.
func DefaultSpec() Spec {
	return Spec{
		Drinks: []DrinkSpec{
			{Name: "Americano", Category: CategoryCoffee, BasePrice: 4500, Temperatures: hotAndIce, Phrases: []string{"아메리카노"}},
			{Name: "Cafe Latte", Category: CategoryCoffee, BasePrice: 5000, Temperatures: hotAndIce, Phrases: []string{"caffe latte", "café latte", "카페라떼", "카페 라떼"}},
			{Name: "Vanilla Latte", Category: CategoryCoffee, BasePrice: 5500, Temperatures: hotAndIce, Phrases: []string{"vanillalatte", "바닐라라떼", "바닐라 라떼"}},
			{Name: "Cappuccino", Category: CategoryCoffee, BasePrice: 5000, Temperatures: hotOnly, Phrases: []string{"카푸치노"}},
			{Name: "Caramel Macchiato", Category: CategoryCoffee, BasePrice: 5500, Temperatures: hotAndIce, Phrases: []string{"macchiato", "카라멜마키아또", "카라멜 마키아또"}},
			{Name: "Espresso", Category: CategoryCoffee, BasePrice: 3000, Temperatures: hotOnly, Phrases: []string{"에스프레소"}},
			{Name: "Green Tea Latte", Category: CategoryNonCoffee, BasePrice: 5500, Temperatures: hotAndIce, Phrases: []string{"matcha latte", "녹차라떼", "녹차 라떼"}},
			{Name: "Chocolate", Category: CategoryNonCoffee, BasePrice: 5000, Temperatures: hotAndIce, Phrases: []string{"초콜릿", "초코"}},
			{Name: "Citron Tea", Category: CategoryNonCoffee, BasePrice: 5000, Temperatures: hotAndIce, Phrases: []string{"yuja tea", "유자차"}},
			{Name: "Chamomile Tea", Category: CategoryNonCoffee, BasePrice: 4500, Temperatures: hotOnly, Phrases: []string{"chamomile", "캐모마일티", "캐모마일"}},
			{Name: "Peppermint Tea", Category: CategoryNonCoffee, BasePrice: 4500, Temperatures: hotOnly, Phrases: []string{"peppermint", "페퍼민트티", "페퍼민트"}},
		},
		// smallest first; the parser prefers later (larger) sizes when both are mentioned
		Sizes: []PricedSpec{
			{Name: SizeRegular, Delta: 0, Phrases: []string{"보통", "중간", "기본", "스탠다드", "작은", "작게", "small", "medium", "작은 거", "작은거", "작은 사이즈"}},
			{Name: SizeLarge, Delta: 500, Phrases: []string{"big", "큰", "크게", "사이즈업", "라지", "큰 거", "큰거", "큰 사이즈", "대형", "맥시멈"}},
		},
		AddOns: []PricedSpec{
			{Name: "Extra Shot", Delta: 500, Phrases: []string{"shot", "샷 추가", "샷추가", "샷"}},
			{Name: "Whipped Cream", Delta: 500, Phrases: []string{"whip", "휘핑크림 추가", "휘핑크림", "휘핑"}},
			{Name: "Vanilla Syrup", Delta: 500, Phrases: []string{"바닐라 시럽", "바닐라시럽"}},
			{Name: "Hazelnut Syrup", Delta: 500, Phrases: []string{"hazelnut", "헤이즐넛 시럽", "헤이즐넛"}},
			{Name: "Caramel Syrup", Delta: 500, Phrases: []string{"카라멜 시럽", "카라멜시럽"}},
		},
		Payments: []PaymentSpec{
			{Method: PaymentCash, Phrases: []string{"현금"}},
			{Method: PaymentCard, Phrases: []string{"카드"}},
			{Method: PaymentMobile, Phrases: []string{"모바일"}},
		},
		Vocabulary: Vocabulary{
			Hot:         []string{"hot", "warm", "따뜻", "뜨거운", "뜨겁게", "핫"},
			Ice:         []string{"iced", "ice", "cold", "아이스", "차가운", "차갑게", "시원한"},
			NoOptions:   []string{"no options", "no option", "no extras", "no thanks", "none", "nothing", "no", "옵션 없", "없어요", "없음", "없습니다"},
			Affirmative: []string{"yes", "yeah", "yep", "ok", "okay", "sure", "confirm", "correct", "네", "예", "응", "좋아요", "맞아요", "확인"},
			Negative:    []string{"no", "nope", "wrong", "change", "아니", "아뇨", "변경"},
		},
	}
}

// Default builds the café menu; it panics only if DefaultSpec itself is malformed.
func Default() *Catalog {
	c, err := New(DefaultSpec())
	if err != nil {
		panic("invalid default catalog: " + err.Error())
	}
	return c
}
