package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	cases := []struct {
		name       string
		in         PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"ceros toman defaults", PageRequest{}, 10, 0},
		{"negativos se recortan", PageRequest{Limit: -5, Offset: -1}, 10, 0},
		{"valores válidos se respetan", PageRequest{Limit: 25, Offset: 50}, 25, 50},
		{"limit acotado a 100", PageRequest{Limit: 500}, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
