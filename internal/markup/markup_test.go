package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{"plain", "hello", Line{{Text: "hello"}}},
		{"color", "{green}up{/} flat", Line{
			{Text: "up", Style: Style{Fg: Green}},
			{Text: " flat"},
		}},
		{"bold and color", "{green}{bold}TOTAL{/}", Line{
			{Text: "TOTAL", Style: Style{Fg: Green, Bold: true}},
		}},
		{"close color keeps bold", "{bold}{red}a{/red}b{/}", Line{
			{Text: "a", Style: Style{Fg: Red, Bold: true}},
			{Text: "b", Style: Style{Bold: true}},
		}},
		{"unknown tag is literal", "{blink}x", Line{{Text: "{blink}x"}}},
		{"unterminated", "a{gre", Line{{Text: "a{gre"}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestStripAndWidth(t *testing.T) {
	s := Paint(Cyan, "BTC") + "   " + Paint(Green, "▲+2.34%")
	assert.Equal(t, "BTC   ▲+2.34%", Strip(s))
	assert.Equal(t, 13, Width(s))
}

func TestTruncate(t *testing.T) {
	s := Paint(Red, "abcdef") + "gh"
	got := Truncate(s, 4)
	assert.Equal(t, "abcd", Strip(got))
	assert.Equal(t, Style{Fg: Red}, Parse(got)[0].Style)

	assert.Equal(t, s, Truncate(s, 8))
	assert.Equal(t, "", Truncate(s, 0))
	// 宽字符不会被截成半个
	assert.Equal(t, "📋", Strip(Truncate("📋📋", 3)))
}

func TestTag(t *testing.T) {
	assert.Equal(t, "{green}", Tag(Green))
	assert.Equal(t, Reset, Tag(Default))
}
