package order

type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "UNPAID"
	StatusPaid   PaymentStatus = "PAID"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPaid:
		return true
	default:
		return false
	}
}
