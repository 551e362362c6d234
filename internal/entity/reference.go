package entity

// ReferenceType selects the grammar and checksum a payment reference must satisfy.
type ReferenceType string

const (
	// ReferenceTypeQRR is the Swiss-domestic numeric reference, 16 to 27 digits
	// with an embedded modulo-10 check digit.
	ReferenceTypeQRR ReferenceType = "QRR"
	// ReferenceTypeSCOR is the ISO 11649 creditor reference, "RF" plus two
	// check digits plus up to 19 alphanumeric characters.
	ReferenceTypeSCOR ReferenceType = "SCOR"
	// ReferenceTypeNON marks a payment carrying no structured reference.
	ReferenceTypeNON ReferenceType = "NON"
)

func (t ReferenceType) String() string {
	return string(t)
}

func (t ReferenceType) IsValid() bool {
	switch t {
	case ReferenceTypeQRR, ReferenceTypeSCOR, ReferenceTypeNON:
		return true
	}

	return false
}

// PaymentReference is a reference string tagged with its type. A NON reference
// is always valid, including the empty string.
type PaymentReference struct {
	Type  ReferenceType `json:"type"`
	Value string        `json:"value"`
}

func (r PaymentReference) IsZero() bool {
	return r.Type == "" && r.Value == ""
}
