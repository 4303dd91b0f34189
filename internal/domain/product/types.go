package product

type Category string

const (
	CategoryCafeteria Category = "cafeteria"
	CategoryFridge    Category = "fridge"
	CategoryFood      Category = "food"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryCafeteria, CategoryFridge, CategoryFood:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
