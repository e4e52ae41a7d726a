package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skipflow/catalog"
	"skipflow/core"
)

// PermitFee is the flat council permit charge for road placement.
const PermitFee = 84

// Summary is the assembled booking shown on the payment step and handed to
// whatever submits it. Submission itself lives outside this app.
type Summary struct {
	Reference      string
	Postcode       string
	Zone           string
	Area           string
	SkipName       string
	SkipSize       int
	HirePeriodDays int
	WasteTypes     []string
	DeliveryDate   time.Time
	DeliveryTime   string
	PermitRequired bool
	PermitFee      int
	SkipPrice      int
	Total          int
}

// Booker assembles summaries and mints booking references.
type Booker struct{}

// Confirm builds the summary for a completed selection. The reference is
// deterministic over the booking's identifying fields, so reconfirming the
// same selection yields the same reference.
func (Booker) Confirm(sel core.Selection, skip catalog.Skip) (Summary, error) {
	if skip.ID == 0 || sel.SkipID != skip.ID {
		return Summary{}, errors.New("no skip selected")
	}
	if strings.TrimSpace(sel.Postcode) == "" {
		return Summary{}, errors.New("no delivery postcode")
	}
	if sel.DeliveryDate.IsZero() {
		return Summary{}, errors.New("no delivery date chosen")
	}

	permit := sel.PermitLocation == "road"
	s := Summary{
		Reference:      reference(sel, skip),
		Postcode:       sel.Postcode,
		Zone:           sel.Zone,
		Area:           skip.Area,
		SkipName:       skip.Name,
		SkipSize:       skip.Size,
		HirePeriodDays: skip.HirePeriodDays,
		WasteTypes:     append([]string(nil), sel.WasteTypes...),
		DeliveryDate:   sel.DeliveryDate,
		DeliveryTime:   skip.DeliveryTime,
		PermitRequired: permit,
		SkipPrice:      skip.FinalPrice,
		Total:          skip.FinalPrice,
	}
	if permit {
		s.PermitFee = PermitFee
		s.Total += PermitFee
	}
	return s, nil
}

func reference(sel core.Selection, skip catalog.Skip) string {
	seed := fmt.Sprintf("booking:%s:%d:%s", Normalize(sel.Postcode), skip.ID, sel.DeliveryDate.Format("2006-01-02"))
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
	return "SF-" + strings.ToUpper(id[:8])
}
