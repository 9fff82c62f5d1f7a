package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemester(t *testing.T) {
	s, err := ParseSemester("Fall 2024")
	require.NoError(t, err)
	assert.Equal(t, Semester{Season: SeasonFall, Year: 2024}, s)
	assert.Equal(t, "Fall 2024", s.String())

	for _, raw := range []string{"Fall", "Winter 2024", "Fall twenty", "Spring 0"} {
		_, err := ParseSemester(raw)
		assert.Error(t, err, raw)
	}
}

func TestSemesterScan(t *testing.T) {
	var s Semester
	require.NoError(t, s.Scan([]byte("Spring 2025")))
	assert.Equal(t, 2025, s.Year)
	assert.Error(t, s.Scan(42))
}

func TestClockTimeParseAndScan(t *testing.T) {
	c, err := ParseClockTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", c.String())

	var scanned ClockTime
	require.NoError(t, scanned.Scan("10:15:00.000000"))
	assert.Equal(t, ClockTime{Hour: 10, Minute: 15}, scanned)

	require.NoError(t, scanned.Scan(time.Date(0, 1, 1, 11, 0, 5, 0, time.UTC)))
	assert.Equal(t, ClockTime{Hour: 11, Second: 5}, scanned)

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
}

func TestClassOfferingOverlaps(t *testing.T) {
	fall := Semester{Season: SeasonFall, Year: 2024}
	at := func(h, m int) ClockTime { return ClockTime{Hour: h, Minute: m} }
	base := ClassOffering{Semester: fall, Location: "X", Start: at(9, 0), End: at(10, 15)}

	cases := []struct {
		name  string
		other ClassOffering
		want  bool
	}{
		{"nested", ClassOffering{Semester: fall, Location: "X", Start: at(9, 30), End: at(10, 0)}, true},
		{"touching end", ClassOffering{Semester: fall, Location: "X", Start: at(10, 15), End: at(11, 0)}, true},
		{"after", ClassOffering{Semester: fall, Location: "X", Start: at(11, 0), End: at(12, 0)}, false},
		{"other room", ClassOffering{Semester: fall, Location: "Y", Start: at(9, 0), End: at(10, 0)}, false},
		{"other semester", ClassOffering{Semester: Semester{Season: SeasonSpring, Year: 2025}, Location: "X", Start: at(9, 0), End: at(10, 0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}
