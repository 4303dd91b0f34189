package order

type ServiceType string

const (
	ServiceTable     ServiceType = "mesa"
	ServiceTakeaway  ServiceType = "para_llevar"
	ServiceCoworking ServiceType = "coworking"
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTable, ServiceTakeaway, ServiceCoworking:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "efectivo"
	PaymentCard PaymentMethod = "tarjeta"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard:
		return true
	default:
		return false
	}
}
