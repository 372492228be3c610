package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternSetFieldCount(t *testing.T) {
	re := regexp.MustCompile(`(x)`)

	tests := []struct {
		name string
		set  PatternSet
		want int
	}{
		{name: "empty set", set: PatternSet{}, want: 0},
		{name: "single field", set: PatternSet{Merchant: re}, want: 1},
		{name: "amount counts as value and currency", set: PatternSet{Amount: re}, want: 2},
		{
			name: "full set with extras",
			set: PatternSet{
				Description: re,
				Amount:      re,
				Merchant:    re,
				Card:        re,
				Account:     re,
				Date:        re,
				Extra:       map[string]*regexp.Regexp{"reference": re, "branch": re},
			},
			want: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.FieldCount())
		})
	}
}
