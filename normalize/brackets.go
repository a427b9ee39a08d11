package normalize

// Bracket is one budget option offered by the trip form.
type Bracket struct {
	Value string
	Label string
}

// Brackets lists the budget options in display order. The last one has no
// upper bound.
var Brackets = []Bracket{
	{Value: "0-500", Label: "Under $500"},
	{Value: "500-1000", Label: "$500 - $1,000"},
	{Value: "1000-2000", Label: "$1,000 - $2,000"},
	{Value: "2000-4000", Label: "$2,000 - $4,000"},
	{Value: "4000-5000", Label: "$4,000 - $5,000"},
	{Value: "5000+", Label: "$5,000+ (no limit)"},
}
