package catalog

import "math"

// Restriction messages are appended in a fixed order so cards render
// deterministically: road placement, heavy waste, transport surcharge.
const (
	RestrictionNoRoad      = "Not suitable for placement on a public road"
	RestrictionNoHeavy     = "Heavy waste is not accepted"
	RestrictionTransported = "Delivery transport surcharge applies"
)

const (
	DeliveryNextDay = "Next day"
	DeliverySameDay = "Same day"
)

// Decorate derives a display-ready Skip from one raw rate. It is total:
// every positive-size rate produces a result, via the exact metadata table
// or the banded synthesizer.
func Decorate(r Rate) Skip {
	withVAT := priceWithVAT(r.PriceBeforeVAT, r.VAT)
	final := withVAT
	if r.TransportCost != nil {
		final += *r.TransportCost
	}

	meta, ok := metadataForSize(r.Size)
	if !ok {
		meta = synthesizeMetadata(r.Size)
	}

	return Skip{
		Rate:         r,
		PriceWithVAT: withVAT,
		FinalPrice:   final,
		DeliveryTime: deliveryTime(r),
		Restrictions: restrictions(r),
		Metadata:     meta,
	}
}

// priceWithVAT rounds half-up on the VAT-inflated value only; surcharges
// are added afterwards, unrounded.
func priceWithVAT(price, vat int) int {
	return int(math.Round(float64(price) * (1 + float64(vat)/100)))
}

func deliveryTime(r Rate) string {
	if r.TransportCost != nil {
		return DeliveryNextDay
	}
	return DeliverySameDay
}

func restrictions(r Rate) []string {
	var out []string
	if !r.AllowedOnRoad {
		out = append(out, RestrictionNoRoad)
	}
	if !r.AllowsHeavyWaste {
		out = append(out, RestrictionNoHeavy)
	}
	if r.TransportCost != nil {
		out = append(out, RestrictionTransported)
	}
	return out
}
