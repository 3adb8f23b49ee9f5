package options

type CategoryEnum int

const (
	CategoryUnsafeNumber CategoryEnum = 1 << iota // int, uint, counter -> float64 with precision loss above 2^53
	CategoryTimestamp                             // timestamp(Unix milliseconds) -> time.Time: date and time representation

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected

	// CategoryDefault mirrors hosts whose only number type is a double
	CategoryDefault = CategoryUnsafeNumber | CategoryTimestamp
)

func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

func (c CategoryEnum) With(other CategoryEnum) CategoryEnum {
	return c | other
}

func (c CategoryEnum) Without(other CategoryEnum) CategoryEnum {
	return c &^ other
}
