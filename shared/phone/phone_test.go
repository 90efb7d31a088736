package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostline/shared/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{
			name:   "formatted with country code",
			number: "+1 845-376-2437",
			want:   "18453762437",
		},
		{
			name:   "bare digits",
			number: "8453762437",
			want:   "8453762437",
		},
		{
			name:   "parentheses and spaces",
			number: "(845) 376 2437",
			want:   "8453762437",
		},
		{
			name:   "empty",
			number: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Normalize(tt.number))
		})
	}
}

func TestLast10(t *testing.T) {
	assert.Equal(t, "8453762437", phone.Last10("+1 845-376-2437"))
	assert.Equal(t, "8453762437", phone.Last10("18453762437"))
	assert.Equal(t, "376243", phone.Last10("376-243"))
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "exact",
			a:    "+18453762437",
			b:    "+18453762437",
			want: true,
		},
		{
			name: "stored formatted, dialed bare",
			a:    "+1 845-376-2437",
			b:    "8453762437",
			want: true,
		},
		{
			name: "stored formatted, dialed with country code",
			a:    "+1 845-376-2437",
			b:    "18453762437",
			want: true,
		},
		{
			name: "different numbers",
			a:    "+1 845-376-2437",
			b:    "8453762438",
			want: false,
		},
		{
			name: "empty caller",
			a:    "+1 845-376-2437",
			b:    "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Matches(tt.a, tt.b))
		})
	}
}
