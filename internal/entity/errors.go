package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")

	// Eligibility / build preconditions.
	ErrMissingCompanyInfo  = errors.New("missing company info")
	ErrMissingClientInfo   = errors.New("missing client info")
	ErrMissingIBAN         = errors.New("missing creditor IBAN")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrNonPositiveAmount   = errors.New("non-positive amount")

	// Reference validation.
	ErrMissingReference  = errors.New("missing reference")
	ErrReferenceFormat   = errors.New("reference format invalid")
	ErrReferenceChecksum = errors.New("reference checksum invalid")
)
