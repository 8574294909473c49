package utils

import (
	"math"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"2021", 2021, true},
		{"12abc", 12, true},
		{"  42", 42, true},
		{"-5", -5, true},
		{"+7", 7, true},
		{"2023.7", 2023, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"a12", 0, false},
		{"99999999999999999999999", math.MaxInt, true},
		{"-99999999999999999999999", math.MinInt, true},
	}
	for _, tc := range cases {
		got, ok := ParseLeadingInt(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestSetupBinding(t *testing.T) {
	type input struct {
		Year string `json:"year" binding:"omitempty,leadingint"`
	}
	SetupBinding()
	SetupBinding()

	require.True(t, binding.EnableDecoderDisallowUnknownFields)
	require.NoError(t, binding.Validator.ValidateStruct(input{Year: "2020"}))
	require.NoError(t, binding.Validator.ValidateStruct(input{}))
	assert.Error(t, binding.Validator.ValidateStruct(input{Year: "invalid"}))
}
