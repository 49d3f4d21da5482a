package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/store"
)

func TestParseVenue(t *testing.T) {
	values := url.Values{
		"name":           {" The Musical Hop "},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"genres":         {"Jazz", "", "Reggae", "Jazz"},
		"website_link":   {"https://www.themusicalhop.com"},
		"seeking_talent": {"y"},
	}

	v := ParseVenue(values)

	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, []string{"Jazz", "Reggae", "Jazz"}, v.Genres)
	assert.Equal(t, "https://www.themusicalhop.com", v.Website)
	assert.True(t, v.SeekingTalent)
	assert.Empty(t, v.Phone)
}

func TestParseArtistDefaults(t *testing.T) {
	a := ParseArtist(url.Values{"name": {"Matt Quevedo"}, "genres[]": {"Jazz"}})

	assert.Equal(t, "Matt Quevedo", a.Name)
	assert.Equal(t, []string{"Jazz"}, a.Genres)
	assert.False(t, a.SeekingVenue)
}

func TestGenresEmpty(t *testing.T) {
	g := Genres(url.Values{})
	assert.NotNil(t, g)
	assert.Empty(t, g)
}

func TestFlag(t *testing.T) {
	tests := []struct {
		raw  []string
		want bool
	}{
		{nil, false},
		{[]string{""}, false},
		{[]string{"false"}, false},
		{[]string{"off"}, false},
		{[]string{"0"}, false},
		{[]string{"on"}, true},
		{[]string{"y"}, true},
		{[]string{"True"}, true},
	}

	for _, tc := range tests {
		values := url.Values{}
		if tc.raw != nil {
			values["seeking_venue"] = tc.raw
		}
		assert.Equal(t, tc.want, Flag(values, "seeking_venue"), "value %v", tc.raw)
	}
}

func TestParseShow(t *testing.T) {
	show, err := ParseShow(url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, int64(4), show.ArtistID)
	assert.Equal(t, int64(1), show.VenueID)
	assert.True(t, show.StartTime.Equal(time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)))
}

func TestParseShowRejectsBadInput(t *testing.T) {
	tests := map[string]url.Values{
		"missing artist": {"venue_id": {"1"}, "start_time": {"2035-04-01 20:00:00"}},
		"negative venue": {"artist_id": {"4"}, "venue_id": {"-1"}, "start_time": {"2035-04-01 20:00:00"}},
		"text id":        {"artist_id": {"four"}, "venue_id": {"1"}, "start_time": {"2035-04-01 20:00:00"}},
		"bad start time": {"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"next tuesday"}},
		"no start time":  {"artist_id": {"4"}, "venue_id": {"1"}},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseShow(values, time.UTC)
			require.ErrorIs(t, err, store.ErrValidation)
		})
	}
}

func TestParseStartTimeLayouts(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, loc)

	for _, raw := range []string{
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
		"2035-04-01T20:00:00",
		"2035-04-02T04:00:00Z",
	} {
		got, err := ParseStartTime(raw, loc)
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(want), "%s parsed as %v", raw, got)
	}
}
