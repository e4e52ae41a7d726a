package catalog

import "fmt"

// sizeMetadata is the curated descriptive table for the skip sizes we
// actually stock. Sizes outside the table go through synthesizeMetadata.
var sizeMetadata = map[int]Metadata{
	4: {
		Name:        "4 Yard Skip",
		Scale:       0.70,
		Popularity:  0.25,
		Icon:        "mini",
		Theme:       "household",
		Description: "Compact skip for small clear-outs and tight driveways.",
		Capacity:    "40-45 bin bags",
		Dimensions:  "1.8m × 1.3m × 0.9m",
		MaxWeight:   "1.5 tonnes",
		BestFor:     []string{"Garden waste", "Small renovations", "House clear-outs"},
		UseCases: []UseCase{
			{Label: "Garden waste", Percent: 40},
			{Label: "Household junk", Percent: 35},
			{Label: "DIY offcuts", Percent: 25},
		},
	},
	6: {
		Name:        "6 Yard Skip",
		Scale:       0.80,
		Popularity:  0.52,
		Icon:        "midi",
		Theme:       "household",
		Description: "The go-to for kitchen and bathroom rip-outs.",
		Capacity:    "60-70 bin bags",
		Dimensions:  "2.6m × 1.5m × 1.2m",
		MaxWeight:   "2.5 tonnes",
		BestFor:     []string{"Kitchen refits", "Bathroom rip-outs", "Soil and rubble"},
		UseCases: []UseCase{
			{Label: "Renovation waste", Percent: 45},
			{Label: "Soil and rubble", Percent: 30},
			{Label: "Household junk", Percent: 25},
		},
	},
	8: {
		Name:        "8 Yard Skip",
		Scale:       0.90,
		Popularity:  0.86,
		Icon:        "builder",
		Theme:       "construction",
		Description: "Our most popular size; a builder's skip for serious jobs.",
		Capacity:    "80-90 bin bags",
		Dimensions:  "3.4m × 1.7m × 1.2m",
		MaxWeight:   "4 tonnes",
		BestFor:     []string{"Full renovations", "Construction waste", "Large clear-outs"},
		UseCases: []UseCase{
			{Label: "Construction waste", Percent: 50},
			{Label: "Renovation waste", Percent: 30},
			{Label: "Garden landscaping", Percent: 20},
		},
	},
	10: {
		Name:        "10 Yard Skip",
		Scale:       0.95,
		Popularity:  0.74,
		Icon:        "builder",
		Theme:       "construction",
		Description: "Extra headroom for bulky, light-to-medium waste.",
		Capacity:    "100-110 bin bags",
		Dimensions:  "3.7m × 1.8m × 1.4m",
		MaxWeight:   "5 tonnes",
		BestFor:     []string{"Shop refits", "Bulky furniture", "Mixed building waste"},
		UseCases: []UseCase{
			{Label: "Mixed building waste", Percent: 45},
			{Label: "Bulky furniture", Percent: 35},
			{Label: "Shop refit waste", Percent: 20},
		},
	},
	12: {
		Name:        "12 Yard Skip",
		Scale:       1.00,
		Popularity:  0.68,
		Icon:        "maxi",
		Theme:       "renovation",
		Description: "Maxi skip for full house renovations and site strips.",
		Capacity:    "120-130 bin bags",
		Dimensions:  "3.7m × 1.8m × 1.7m",
		MaxWeight:   "6 tonnes",
		BestFor:     []string{"House renovations", "Site strip-outs", "Large garden projects"},
		UseCases: []UseCase{
			{Label: "Site strip-out", Percent: 50},
			{Label: "Renovation waste", Percent: 30},
			{Label: "Garden landscaping", Percent: 20},
		},
	},
	14: {
		Name:        "14 Yard Skip",
		Scale:       1.05,
		Popularity:  0.45,
		Icon:        "maxi",
		Theme:       "renovation",
		Description: "High-sided maxi for volume over weight.",
		Capacity:    "140-150 bin bags",
		Dimensions:  "4.0m × 1.8m × 1.8m",
		MaxWeight:   "6.5 tonnes",
		BestFor:     []string{"Office clearances", "Large strip-outs", "Light demolition"},
		UseCases: []UseCase{
			{Label: "Office clearance", Percent: 40},
			{Label: "Site strip-out", Percent: 35},
			{Label: "Light demolition", Percent: 25},
		},
	},
	16: {
		Name:        "16 Yard Skip",
		Scale:       1.10,
		Popularity:  0.38,
		Icon:        "maxi",
		Theme:       "construction",
		Description: "The largest conventional skip before roll-on-roll-off.",
		Capacity:    "160-170 bin bags",
		Dimensions:  "4.1m × 1.8m × 2.0m",
		MaxWeight:   "7 tonnes",
		BestFor:     []string{"Commercial clearances", "Large site waste", "Shop fit-outs"},
		UseCases: []UseCase{
			{Label: "Commercial clearance", Percent: 45},
			{Label: "Site waste", Percent: 35},
			{Label: "Fit-out waste", Percent: 20},
		},
	},
	20: {
		Name:        "20 Yard Roll-On Roll-Off",
		Scale:       1.25,
		Popularity:  0.30,
		Icon:        "roro",
		Theme:       "commercial",
		Description: "Roll-on-roll-off container delivered by hook loader.",
		Capacity:    "200-220 bin bags",
		Dimensions:  "6.1m × 2.4m × 1.7m",
		MaxWeight:   "10 tonnes",
		BestFor:     []string{"Demolition", "Industrial sites", "Bulk inert waste"},
		UseCases: []UseCase{
			{Label: "Demolition waste", Percent: 55},
			{Label: "Bulk inert waste", Percent: 30},
			{Label: "Industrial waste", Percent: 15},
		},
	},
	40: {
		Name:        "40 Yard Roll-On Roll-Off",
		Scale:       1.40,
		Popularity:  0.20,
		Icon:        "roro",
		Theme:       "industrial",
		Description: "Maximum-volume container for light commercial waste.",
		Capacity:    "400-440 bin bags",
		Dimensions:  "6.1m × 2.4m × 2.6m",
		MaxWeight:   "12 tonnes",
		BestFor:     []string{"Factory clearances", "Large demolition", "Bulk light waste"},
		UseCases: []UseCase{
			{Label: "Factory clearance", Percent: 45},
			{Label: "Demolition waste", Percent: 35},
			{Label: "Bulk light waste", Percent: 20},
		},
	},
}

// metadataForSize is the exact-match path.
func metadataForSize(size int) (Metadata, bool) {
	m, ok := sizeMetadata[size]
	return m, ok
}

// synthesizeMetadata is the only defined behaviour for sizes missing from
// the table. The bands and formulas below are fixed; do not interpolate
// between them.
func synthesizeMetadata(size int) Metadata {
	var (
		icon, theme string
		bestFor     []string
		useCases    []UseCase
	)
	switch {
	case size >= 40:
		icon, theme = "roro", "industrial"
		bestFor = []string{"Factory clearances", "Large demolition"}
		useCases = []UseCase{{Label: "Demolition waste", Percent: 60}, {Label: "Industrial waste", Percent: 40}}
	case size >= 20:
		icon, theme = "roro", "commercial"
		bestFor = []string{"Demolition", "Bulk inert waste"}
		useCases = []UseCase{{Label: "Demolition waste", Percent: 55}, {Label: "Bulk inert waste", Percent: 45}}
	case size >= 16:
		icon, theme = "maxi", "construction"
		bestFor = []string{"Commercial clearances", "Large site waste"}
		useCases = []UseCase{{Label: "Site waste", Percent: 60}, {Label: "Commercial clearance", Percent: 40}}
	case size >= 14:
		icon, theme = "maxi", "renovation"
		bestFor = []string{"Large strip-outs", "Office clearances"}
		useCases = []UseCase{{Label: "Site strip-out", Percent: 55}, {Label: "Office clearance", Percent: 45}}
	case size >= 12:
		icon, theme = "maxi", "garden"
		bestFor = []string{"House renovations", "Large garden projects"}
		useCases = []UseCase{{Label: "Renovation waste", Percent: 60}, {Label: "Garden landscaping", Percent: 40}}
	default:
		icon, theme = "mini", "household"
		bestFor = []string{"House clear-outs", "Garden waste"}
		useCases = []UseCase{{Label: "Household junk", Percent: 60}, {Label: "Garden waste", Percent: 40}}
	}

	return Metadata{
		Name:        fmt.Sprintf("%d Yard Skip", size),
		Scale:       synthScale(size),
		Popularity:  synthPopularity,
		Icon:        icon,
		Theme:       theme,
		Description: fmt.Sprintf("%d cubic yard skip.", size),
		Capacity:    fmt.Sprintf("%d-%d bin bags", size*10, size*12),
		Dimensions:  synthDimensions(size),
		MaxWeight:   synthMaxWeight(size),
		BestFor:     bestFor,
		UseCases:    useCases,
	}
}

// Untabulated sizes never outrank curated ones in popularity scans.
const synthPopularity = 0.10

func synthScale(size int) float64 {
	s := 0.60 + float64(size)/50
	if s > 1.40 {
		s = 1.40
	}
	return s
}

func synthDimensions(size int) string {
	length := 1.5 + 0.12*float64(size)
	width := 1.2 + 0.03*float64(size)
	height := 0.8 + 0.04*float64(size)
	return fmt.Sprintf("%.1fm × %.1fm × %.1fm", length, width, height)
}

func synthMaxWeight(size int) string {
	return fmt.Sprintf("%.1f tonnes", 0.4*float64(size))
}
