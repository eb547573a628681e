package warming

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Line
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "number with description",
			text: "+5511912345678 | test",
			want: []Line{{Primary: "+5511912345678", Secondary: "test"}},
		},
		{
			name: "number without description",
			text: "  +5511912345678  ",
			want: []Line{{Primary: "+5511912345678"}},
		},
		{
			name: "blank lines and empty primary dropped",
			text: "\n+5511900000001\n   \n | orphan description\n+5511900000002|b\n",
			want: []Line{
				{Primary: "+5511900000001"},
				{Primary: "+5511900000002", Secondary: "b"},
			},
		},
		{
			name: "crlf",
			text: "Team A | https://chat.whatsapp.com/xyz\r\nTeam B|https://chat.whatsapp.com/abc\r\n",
			want: []Line{
				{Primary: "Team A", Secondary: "https://chat.whatsapp.com/xyz"},
				{Primary: "Team B", Secondary: "https://chat.whatsapp.com/abc"},
			},
		},
		{
			name: "extra fields ignored",
			text: "Team A | https://chat.whatsapp.com/xyz | extra",
			want: []Line{{Primary: "Team A", Secondary: "https://chat.whatsapp.com/xyz"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLines(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLines_Idempotent(t *testing.T) {
	text := "+5511912345678 | a\n\n5511 | b\n|c\nTeam | https://chat.whatsapp.com/x"
	first := ParseLines(text)
	second := ParseLines(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parsing twice differs (-first +second):\n%s", diff)
	}
}
