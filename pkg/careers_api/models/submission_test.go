package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkills(t *testing.T) {
	cases := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{"single value", []string{"soil"}, []string{"soil"}},
		{"comma separated", []string{"soil,GIS"}, []string{"soil", "GIS"}},
		{"repeated field", []string{"soil", "GIS"}, []string{"soil", "GIS"}},
		{"repeated with commas", []string{"soil, GIS", "irrigation"}, []string{"soil", "GIS", "irrigation"}},
		{"whitespace trimmed", []string{"  soil , GIS  "}, []string{"soil", "GIS"}},
		{"empty pieces dropped", []string{"soil,,GIS,"}, []string{"soil", "GIS"}},
		{"no input", nil, []string{}},
		{"only empties", []string{" ", ","}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkills(tc.inputs...))
		})
	}
}

func TestParseCheckbox(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"on", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"", false},
		{"True", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCheckbox(tc.input), "input %q", tc.input)
	}
}

func TestStringListUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		json string
		want StringList
	}{
		{"single string", `"soil"`, StringList{"soil"}},
		{"comma string", `"soil,GIS"`, StringList{"soil", "GIS"}},
		{"array", `["soil","GIS"]`, StringList{"soil", "GIS"}},
		{"array with commas", `["soil, GIS","irrigation"]`, StringList{"soil", "GIS", "irrigation"}},
		{"empty array", `[]`, StringList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tc.json), &got))
			assert.Equal(t, tc.want, got)
		})
	}

	var bad StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestCheckboxUnmarshal(t *testing.T) {
	cases := []struct {
		json string
		want Checkbox
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"on"`, true},
		{`"off"`, false},
		{`"anything"`, false},
	}

	for _, tc := range cases {
		var got Checkbox
		require.NoError(t, json.Unmarshal([]byte(tc.json), &got))
		assert.Equal(t, tc.want, got, "json %s", tc.json)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusReviewed, StatusAccepted, StatusRejected} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending"))
}
