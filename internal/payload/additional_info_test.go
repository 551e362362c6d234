package payload_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/alpenbill/qrbill/internal/payload"
)

func TestFormatAdditionalInfo(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		number string
		notes  string
		want   string
	}{
		{
			name:   "number only",
			number: "2024-001",
			want:   "Invoice: 2024-001",
		},
		{
			name:   "short note appended",
			number: "2024-001",
			notes:  "pay by end of month",
			want:   "Invoice: 2024-001 - Note: pay by end of month",
		},
		{
			name:   "note cut at 100 characters",
			number: "2024-001",
			notes:  strings.Repeat("n", 200),
			want:   "Invoice: 2024-001 - Note: " + strings.Repeat("n", 100),
		},
		{
			name:   "multi-byte note under the limit kept whole",
			number: "2024-001",
			notes:  strings.Repeat("ü", 60),
			want:   "Invoice: 2024-001 - Note: " + strings.Repeat("ü", 60),
		},
		{
			name:   "multi-byte note cut at 100 characters",
			number: "2024-001",
			notes:  "a" + strings.Repeat("ü", 150),
			want:   "Invoice: 2024-001 - Note: a" + strings.Repeat("ü", 99),
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := payload.FormatAdditionalInfo(tt.number, tt.notes)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, utf8.RuneCountInString(got), 140)
			require.True(t, utf8.ValidString(got))
		})
	}
}

// The 140-character cap: built strings of 139, 140 and 141 characters.
// "Invoice: " contributes 9 characters.
func TestFormatAdditionalInfo_Boundaries(t *testing.T) {
	t.Parallel()

	t.Run("139 stays intact", func(t *testing.T) {
		t.Parallel()

		got := payload.FormatAdditionalInfo(strings.Repeat("9", 130), "")
		require.Len(t, got, 139)
		require.False(t, strings.HasSuffix(got, "..."))
	})

	t.Run("140 stays intact", func(t *testing.T) {
		t.Parallel()

		got := payload.FormatAdditionalInfo(strings.Repeat("9", 131), "")
		require.Len(t, got, 140)
		require.False(t, strings.HasSuffix(got, "..."))
	})

	t.Run("141 is cut to 137 plus suffix", func(t *testing.T) {
		t.Parallel()

		got := payload.FormatAdditionalInfo(strings.Repeat("9", 132), "")
		require.Len(t, got, 140)
		require.True(t, strings.HasSuffix(got, "..."))
		require.Equal(t, "Invoice: "+strings.Repeat("9", 128), got[:137])
	})

	t.Run("long note never exceeds the cap", func(t *testing.T) {
		t.Parallel()

		got := payload.FormatAdditionalInfo(strings.Repeat("9", 40), strings.Repeat("n", 200))
		require.LessOrEqual(t, len(got), 140)
		require.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("140 umlauts stay intact", func(t *testing.T) {
		t.Parallel()

		got := payload.FormatAdditionalInfo(strings.Repeat("ä", 131), "")
		require.Equal(t, 140, utf8.RuneCountInString(got))
		require.False(t, strings.HasSuffix(got, "..."))
		require.True(t, utf8.ValidString(got))
	})

	t.Run("141 umlauts cut cleanly between characters", func(t *testing.T) {
		t.Parallel()

		got := payload.FormatAdditionalInfo(strings.Repeat("ä", 132), "")
		require.Equal(t, 140, utf8.RuneCountInString(got))
		require.True(t, strings.HasSuffix(got, "..."))
		require.True(t, utf8.ValidString(got))
		require.Equal(t, "Invoice: "+strings.Repeat("ä", 128), strings.TrimSuffix(got, "..."))
	})
}
