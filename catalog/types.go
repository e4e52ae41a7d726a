package catalog

import "time"

// Rate is one priceable skip-size offering as supplied by the rate source.
// TransportCost and PerTonneCost are nil when the size carries no surcharge.
type Rate struct {
	ID               int
	Size             int
	HirePeriodDays   int
	TransportCost    *int
	PerTonneCost     *int
	PriceBeforeVAT   int
	VAT              int
	PostcodeZone     string
	Area             string
	Forbidden        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	AllowedOnRoad    bool
	AllowsHeavyWaste bool
}

// UseCase is one "what people put in it" share shown on the detail card.
type UseCase struct {
	Label   string
	Percent int
}

// Metadata is the descriptive layer for a skip size: everything the cards
// show that is not derived from the rate's own price/permission fields.
type Metadata struct {
	Name        string
	Scale       float64
	Popularity  float64
	Icon        string
	Theme       string
	Description string
	Capacity    string
	Dimensions  string
	MaxWeight   string
	BestFor     []string
	UseCases    []UseCase
}

// Skip is a fully decorated catalog entry. Immutable once built.
type Skip struct {
	Rate

	// PriceWithVAT is the pre-tax price inflated by VAT, rounded half-up to
	// a whole pound. FinalPrice adds the transport surcharge (unrounded) on
	// top when one exists, so FinalPrice >= PriceWithVAT always holds.
	PriceWithVAT int
	FinalPrice   int

	DeliveryTime string
	Restrictions []string

	Metadata
}

// HasTransportCost reports whether the underlying rate carries a transport
// surcharge.
func (s Skip) HasTransportCost() bool {
	return s.TransportCost != nil
}
