package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedRooms_Default(t *testing.T) {
	seeds := parseSeedRooms(defaultSeed)
	require.Len(t, seeds, 3)
	assert.Equal(t, RoomSeed{Name: "Room 204 (Lab)", Capacity: 20}, seeds[0])
	assert.Equal(t, RoomSeed{Name: "Library Study Hall", Capacity: 50}, seeds[1])
	assert.Equal(t, RoomSeed{Name: "Room 101 (Lecture)", Capacity: 30}, seeds[2])
}

func TestParseSeedRooms_SkipsMalformedEntries(t *testing.T) {
	seeds := parseSeedRooms("Good Room:5;;no-capacity;:10;Negative:-3;Annex B:7")
	require.Len(t, seeds, 2)
	assert.Equal(t, RoomSeed{Name: "Good Room", Capacity: 5}, seeds[0])
	assert.Equal(t, RoomSeed{Name: "Annex B", Capacity: 7}, seeds[1])
}

func TestParseSeedRooms_Empty(t *testing.T) {
	assert.Empty(t, parseSeedRooms(""))
}
