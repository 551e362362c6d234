package payload

import "unicode/utf8"

const (
	// maxAdditionalInfoLen is the QR-bill limit on the free-text field,
	// counted in characters, not bytes.
	maxAdditionalInfoLen = 140
	maxNoteLen           = 100
	truncationSuffix     = "..."
)

// FormatAdditionalInfo builds the additional-information line for the slip:
// "Invoice: {number}", optionally joined with a note truncated to 100
// characters, the whole string hard-capped at 140 characters with a "..."
// suffix when cut. Limits are applied per rune so multi-byte notes are never
// cut early or split mid-character.
func FormatAdditionalInfo(invoiceNumber, notes string) string {
	info := "Invoice: " + invoiceNumber

	if notes != "" {
		info += " - Note: " + truncateRunes(notes, maxNoteLen)
	}

	if utf8.RuneCountInString(info) > maxAdditionalInfoLen {
		info = truncateRunes(info, maxAdditionalInfoLen-len(truncationSuffix)) + truncationSuffix
	}

	return info
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}
