package expense

type Category string

const (
	CategoryUtilities Category = "luz"
	CategoryInternet  Category = "internet"
	CategorySalaries  Category = "sueldos"
	CategoryInventory Category = "inventario"
	CategoryOther     Category = "otro"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryUtilities, CategoryInternet, CategorySalaries, CategoryInventory, CategoryOther:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeRecurring Type = "frecuente"
	TypeEmergency Type = "emergente"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRecurring, TypeEmergency:
		return true
	default:
		return false
	}
}
