// Package elster renders Umsatzsteuervoranmeldung documents in the
// fixed Elster XML schema.
package elster

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ustva/internal/domain"
)

// land is the country emitted for every client. Multi-country support
// would make this per-client master data.
const land = "Spanien"

type document struct {
	XMLName          xml.Name     `xml:"Elster"`
	Erstellungsdatum string       `xml:"Erstellungsdatum"`
	Bezeichnung      string       `xml:"Bezeichnung"`
	Unternehmer      unternehmer  `xml:"Unternehmer"`
	Voranmeldung     voranmeldung `xml:"Umsatzsteuervoranmeldung"`
}

type unternehmer struct {
	Str        string `xml:"Str"`
	Hausnummer string `xml:"Hausnummer"`
	Ort        string `xml:"Ort"`
	PLZ        string `xml:"PLZ"`
	Land       string `xml:"Land"`
}

type voranmeldung struct {
	Jahr     int    `xml:"Jahr"`
	Zeitraum string `xml:"Zeitraum"`
	Kz81     string `xml:"Kz81,omitempty"`
	Kz86     string `xml:"Kz86,omitempty"`
	Kz43     string `xml:"Kz43,omitempty"`
	Kz89     string `xml:"Kz89,omitempty"`
	Kz61     string `xml:"Kz61,omitempty"`
}

// BuildUStVA renders the Elster XML document for one report. createdAt is
// the export moment and becomes the Erstellungsdatum, in YYYYMMDD.
//
// Zero-valued Kennziffern are omitted entirely rather than emitted as
// "0.00"; the receiving system treats a present zero differently from an
// absent element. Non-zero figures are formatted with exactly two decimal
// places, rounding half away from zero.
func BuildUStVA(client *domain.Client, report *domain.VatReport, createdAt time.Time) ([]byte, error) {
	doc := document{
		Erstellungsdatum: createdAt.Format("20060102"),
		Bezeichnung:      client.CompanyName,
		Unternehmer: unternehmer{
			Str:        client.Street,
			Hausnummer: client.StreetNumber,
			Ort:        client.City,
			PLZ:        client.Postcode,
			Land:       land,
		},
		Voranmeldung: voranmeldung{
			Jahr:     report.Year,
			Zeitraum: report.PeriodCode,
			Kz81:     kennziffer(report.Kz81),
			Kz86:     kennziffer(report.Kz86),
			Kz43:     kennziffer(report.Kz43),
			Kz89:     kennziffer(report.Kz89),
			Kz61:     kennziffer(report.Kz61),
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("elster: marshal ustva: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// kennziffer formats a monetary figure for the wire, or returns "" for
// zero so the element is dropped.
func kennziffer(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
