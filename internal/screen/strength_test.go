package screen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		in   [2]string
		want int
	}{
		{name: "empty", in: [2]string{"", ""}, want: 0},
		{name: "short name", in: [2]string{"Al", ""}, want: 25},
		{name: "name and 30 bio", in: [2]string{"Alice", strings.Repeat("x", 30)}, want: 80},
		{name: "full", in: [2]string{"Alice", strings.Repeat("x", 80)}, want: 100},
		{name: "29 bio", in: [2]string{"Alice", strings.Repeat("x", 29)}, want: 60},
		{name: "whitespace only", in: [2]string{"   ", "\t\n"}, want: 0},
		{name: "trimmed name", in: [2]string{"  Al  ", ""}, want: 25},
		{name: "runes not bytes", in: [2]string{"Юля", strings.Repeat("ж", 30)}, want: 80},
		{name: "bio only", in: [2]string{"", "hi"}, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.in[0], tt.in[1])
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Score(tt.in[0], tt.in[1]))
		})
	}
}

func TestStrengthLabel(t *testing.T) {
	assert.Equal(t, StrengthWeak, StrengthLabel(0))
	assert.Equal(t, StrengthWeak, StrengthLabel(35))
	assert.Equal(t, StrengthGood, StrengthLabel(40))
	assert.Equal(t, StrengthGood, StrengthLabel(60))
	assert.Equal(t, StrengthExcellent, StrengthLabel(75))
	assert.Equal(t, StrengthExcellent, StrengthLabel(100))
}
