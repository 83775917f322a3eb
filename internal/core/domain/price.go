package domain

const DefaultCurrency = "EUR"

// Price is a public price-list item. An unset amount means "contact for
// quote".
type Price struct {
	ID               string
	Title            string
	ShortDescription string
	FullDescription  string
	Price            Amount
	Currency         string
	PhotoURLs        []string
}

// PriceUpdate carries a partial update; nil fields are left untouched.
type PriceUpdate struct {
	Title            *string
	ShortDescription *string
	FullDescription  *string
	Price            *Amount
	Currency         *string
}
