package catalog

import "time"

// DefaultRates is the hardcoded rate sheet for the NR32 zone. It stands in
// for a fetched payload of identical shape; a production build would swap
// this for the rate service response.
func DefaultRates() []Rate {
	created := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)
	transport := 248
	perTonne := 248

	rate := func(id, size, price int, onRoad, heavy bool) Rate {
		return Rate{
			ID:               id,
			Size:             size,
			HirePeriodDays:   14,
			PriceBeforeVAT:   price,
			VAT:              20,
			PostcodeZone:     "NR32",
			Area:             "Lowestoft",
			CreatedAt:        created,
			UpdatedAt:        updated,
			AllowedOnRoad:    onRoad,
			AllowsHeavyWaste: heavy,
		}
	}

	rates := []Rate{
		rate(17933, 4, 278, true, true),
		rate(17934, 6, 305, true, true),
		rate(17935, 8, 375, true, true),
		rate(17936, 10, 400, false, false),
		rate(17937, 12, 439, false, false),
		rate(17938, 14, 470, false, false),
		rate(17939, 16, 496, false, false),
		rate(17940, 20, 992, false, true),
		rate(17941, 40, 1216, false, false),
	}
	for i := range rates {
		if rates[i].Size >= 20 {
			rates[i].TransportCost = &transport
			rates[i].PerTonneCost = &perTonne
		}
	}
	return rates
}
