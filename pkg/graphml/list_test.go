package graphml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Bergheimer Straße", []string{"Bergheimer Straße"}},
		{"['Bergheimer Straße', 'Sofienstraße']", []string{"Bergheimer Straße", "Sofienstraße"}},
		{`["Carl's Weg", 'Plöck']`, []string{"Carl's Weg", "Plöck"}},
		{"[123, 456]", []string{"123", "456"}},
		{"[]", []string{}},
		{"[' Kurfürsten-Anlage ', 'B 37']", []string{" Kurfürsten-Anlage ", "B 37"}},
		{"[ 123 , 456 ]", []string{"123", "456"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseList(tc.in))
		})
	}
}

func TestFormatListQuoting(t *testing.T) {
	names := []string{"Hauptstraße", "Carl's Weg", `back\slash`}
	s := formatList(names)
	assert.Equal(t, `['Hauptstraße', "Carl's Weg", 'back\\slash']`, s)
	assert.Equal(t, names, parseList(s))
}
