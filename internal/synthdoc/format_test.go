package synthdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNumberFormatter(t *testing.T) {
	f := NewNumberFormatter(language.English)

	tests := []struct {
		in   string
		want string
	}{
		{"9000", "9,000"},
		{"13500.0", "13,500"},
		{"1234.5", "1,234.5"},
		{"0.25", "0.25"},
		{"0.123456", "0.12346"},
		{"1000000", "1,000,000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(d(tt.in)))
		})
	}
}
