package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidPeriodCode    = errors.New("invalid period code; allowed: 01-12 or 41-44")
	ErrUnknownClient        = errors.New("client does not exist")
	ErrReportNotFound       = errors.New("vat report not found")
	ErrDuplicateCompanyName = errors.New("company name already exists")
)
