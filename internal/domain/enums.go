package domain

// ReportStatus represents the workflow state of a VAT report.
// Only "draft" is written today; the remaining states are reserved for
// the submission workflow.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
)

// ValidPeriodCodes maps the allowed Zeitraum codes: "01"-"12" are monthly
// filings, "41"-"44" quarterly ones.
var ValidPeriodCodes = map[string]bool{
	"01": true, "02": true, "03": true, "04": true,
	"05": true, "06": true, "07": true, "08": true,
	"09": true, "10": true, "11": true, "12": true,
	"41": true, "42": true, "43": true, "44": true,
}

// IsValidPeriodCode reports whether code is an allowed Zeitraum.
func IsValidPeriodCode(code string) bool {
	return ValidPeriodCodes[code]
}
