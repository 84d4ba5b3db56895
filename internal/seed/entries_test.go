package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEntriesShape(t *testing.T) {
	entries := Entries()
	require.Len(t, entries, 4)

	for i, e := range entries {
		assert.False(t, e.Date.IsZero(), "entry %d has no date", i)
		assert.NotEmpty(t, e.Text, "entry %d has no text", i)
		assert.Equal(t, time.UTC, e.Date.Location(), "entry %d", i)
		if e.Location == nil {
			continue
		}
		assert.GreaterOrEqual(t, e.Location.Latitude, -90.0)
		assert.LessOrEqual(t, e.Location.Latitude, 90.0)
		assert.GreaterOrEqual(t, e.Location.Longitude, -180.0)
		assert.LessOrEqual(t, e.Location.Longitude, 180.0)
	}

	withLocation := 0
	for _, e := range entries {
		if e.Location != nil {
			withLocation++
		}
	}
	assert.Equal(t, 3, withLocation)
	assert.Nil(t, entries[3].Location)
}

func TestEntriesOrderAndDates(t *testing.T) {
	want := []time.Time{
		time.Date(1899, 11, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1957, 9, 24, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 11, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1950, 2, 13, 15, 30, 0, 0, time.UTC),
	}
	entries := Entries()
	for i, w := range want {
		assert.True(t, w.Equal(entries[i].Date), "entry %d: got %s want %s", i, entries[i].Date, w)
	}
	assert.Contains(t, entries[0].Text, "Futbol Club Barcelona")
	assert.Contains(t, entries[0].Text, "Gimnàs Solé")
	assert.Equal(t, "test", entries[3].Text)
}

func TestEntriesReturnsFreshCopy(t *testing.T) {
	a := Entries()
	a[0].Text = "changed"
	a[0].Location.Latitude = 0
	a[2].Location.Longitude = 0

	b := Entries()
	assert.Contains(t, b[0].Text, "Futbol Club Barcelona")
	assert.Equal(t, 41.38291533569831, b[0].Location.Latitude)
	assert.Equal(t, 2.169884207359594, b[2].Location.Longitude)
}

func TestEntriesDocumentEncoding(t *testing.T) {
	entries := Entries()

	b, err := bson.Marshal(entries[0])
	require.NoError(t, err)
	doc := bson.Raw(b)
	loc, err := doc.LookupErr("location", "latitude")
	require.NoError(t, err)
	lat, ok := loc.DoubleOK()
	require.True(t, ok)
	assert.Equal(t, 41.38291533569831, lat)
	_, ok = doc.Lookup("date").DateTimeOK()
	assert.True(t, ok, "date must encode as a BSON datetime")

	b, err = bson.Marshal(entries[3])
	require.NoError(t, err)
	_, err = bson.Raw(b).LookupErr("location")
	assert.Error(t, err, "entry without location must not carry the field")
}
