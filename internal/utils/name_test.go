package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailToName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ahmad.khaled93@gmail.com", "Ahmad Khaled"},
		{"sara_m@example.com", "Sara M"},
		{"omar-ali@example.com", "Omar Ali"},
		{"plain@example.com", "Plain"},
		{"noatsign", "Noatsign"},
		{"123@example.com", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EmailToName(tc.in), tc.in)
	}
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "مراجعة كتاب", SanitizeText("<b>مراجعة</b>   كتاب"))
	assert.Equal(t, "hello", SanitizeText("<script>alert(1)</script>hello"))
	assert.Equal(t, "a b", SanitizeText("  a\n\tb  "))
	assert.Equal(t, "", SanitizeText(""))
}
