package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/lookup"
)

func TestPattern_In(t *testing.T) {
	cases := []struct {
		needle, text string
		want         bool
	}{
		{"Nagar", "Mohan Nagar", true},
		{"nagar", "Mohan Nagar", false},
		{"abab", "abacababd", true},
		{"aab", "aaab", true},
		{"aaaa", "aaa", false},
		{"Chowk", "Rajiv Chowk", true},
		{"", "anything", false},
		{"x", "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lookup.Compile(tc.needle).In(tc.text), "%q in %q", tc.needle, tc.text)
	}
	assert.Equal(t, "abc", lookup.Compile("abc").Needle())
}

func TestIndex_FindNagar(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.Line("l", "Mohan Nagar", "Ramesh Nagar", "Park"))
	require.NoError(t, err)
	ix := lookup.New(g)

	assert.Equal(t, []lookup.Entry{
		{ID: 0, Name: "Mohan Nagar"},
		{ID: 1, Name: "Ramesh Nagar"},
	}, ix.Find("Nagar"))
	assert.Empty(t, ix.Find("Metro"))
	assert.NotNil(t, ix.Find(""))
	assert.Empty(t, ix.Find(""), "empty query matches nothing")
}

func TestIndex_FirstOccurrenceIDs(t *testing.T) {
	g, err := builder.BuildNetwork(nil,
		builder.Line("red", "A", "Hub", "B"),
		builder.Line("blue", "C", "Hub"),
		builder.Interchanges("Hub"),
	)
	require.NoError(t, err)
	ix := lookup.New(g)

	assert.Equal(t, 4, ix.Len())
	assert.Equal(t, []lookup.Entry{
		{ID: 0, Name: "A"}, {ID: 1, Name: "Hub"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"},
	}, ix.Entries())

	assert.Equal(t, []lookup.Occurrence{
		{ID: 1, Name: "Hub", Line: "red"},
		{ID: 4, Name: "Hub", Line: "blue"},
	}, ix.FindVertices("Hu"))
	assert.Empty(t, ix.FindVertices(""))
}
