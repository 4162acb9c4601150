package value

// QuoteType marks which acquisition source produced a price quote.
type QuoteType string

const (
	QuoteTypeCash     QuoteType = "cash"
	QuoteTypeCashSell QuoteType = "cash-sell"
	QuoteTypeBarter   QuoteType = "barter"
	QuoteTypeCraft    QuoteType = "craft"
	QuoteTypeNone     QuoteType = "none"
)

func (t QuoteType) String() string {
	return string(t)
}
