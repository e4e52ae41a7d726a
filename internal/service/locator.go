package service

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"skipflow/catalog"
)

// Locator answers "do we serve this postcode" from the zones present in
// the rate sheet, and offers a nearest-zone suggestion for near misses.
type Locator struct {
	zones map[string]string // outward zone -> area label
}

// Match is a served zone resolution.
type Match struct {
	Zone string
	Area string
}

func NewLocator(rates []catalog.Rate) *Locator {
	zones := make(map[string]string)
	for _, r := range rates {
		zone := strings.ToUpper(strings.TrimSpace(r.PostcodeZone))
		if zone == "" {
			continue
		}
		if _, seen := zones[zone]; !seen {
			zones[zone] = r.Area
		}
	}
	return &Locator{zones: zones}
}

// Zones lists served outward zones in stable order.
func (l *Locator) Zones() []Match {
	out := make([]Match, 0, len(l.zones))
	for zone, area := range l.zones {
		out = append(out, Match{Zone: zone, Area: area})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Zone < out[j].Zone })
	return out
}

// Normalize uppercases and collapses whitespace in a raw postcode.
func Normalize(raw string) string {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(raw)))
	return strings.Join(fields, " ")
}

// OutwardCode extracts the leading outward portion of a postcode: the part
// before the space, or for unspaced input everything up to the final
// digit+letters inward group.
func OutwardCode(postcode string) string {
	pc := Normalize(postcode)
	if pc == "" {
		return ""
	}
	if i := strings.IndexByte(pc, ' '); i > 0 {
		return pc[:i]
	}
	// full unspaced postcodes end in digit-letter-letter
	if len(pc) > 3 {
		tail := pc[len(pc)-3:]
		if unicode.IsDigit(rune(tail[0])) && unicode.IsLetter(rune(tail[1])) && unicode.IsLetter(rune(tail[2])) {
			return pc[:len(pc)-3]
		}
	}
	return pc
}

// PlausiblePostcode is a shape check only: starts with a letter and
// contains at least one digit. Zone membership is checked separately.
func PlausiblePostcode(postcode string) bool {
	pc := Normalize(postcode)
	if len(pc) < 2 {
		return false
	}
	if !unicode.IsLetter(rune(pc[0])) {
		return false
	}
	for _, r := range pc {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Resolve matches a postcode's outward code against the served zones.
func (l *Locator) Resolve(postcode string) (Match, bool) {
	zone := OutwardCode(postcode)
	if zone == "" {
		return Match{}, false
	}
	area, ok := l.zones[zone]
	if !ok {
		return Match{}, false
	}
	return Match{Zone: zone, Area: area}, true
}

// Suggest returns the served zone nearest to the input's outward code, for
// "did you mean" hints. Distances above 2 are too far to be useful.
func (l *Locator) Suggest(postcode string) (Match, bool) {
	input := OutwardCode(postcode)
	if input == "" {
		return Match{}, false
	}
	best := Match{}
	bestDist := -1
	for _, m := range l.Zones() {
		dist := levenshtein.ComputeDistance(input, m.Zone)
		if bestDist < 0 || dist < bestDist {
			best = m
			bestDist = dist
		}
	}
	if bestDist < 0 || bestDist > 2 {
		return Match{}, false
	}
	return best, true
}
