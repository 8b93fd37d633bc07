package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTimeline() Timeline {
	hours := []HourRecord{
		{Time: "00:00:00", Temp: 28.2, WindDir: 180, Pressure: 1015, CloudCover: ptr(10), Conditions: "Clear"},
		{Time: "01:00:00", Temp: 27.8, WindDir: 185, Pressure: 1015, CloudCover: ptr(12), Conditions: "Clear"},
	}
	return Timeline{
		ResolvedAddress: "Saratoga Springs, NY, United States",
		Timezone:        "America/New_York",
		CurrentConditions: CurrentConditions{
			Time:       "09:00:00",
			Temp:       30.4,
			FeelsLike:  24.6,
			Conditions: "Clear",
			WindSpeed:  8.3,
			WindGust:   15.7,
			WindDir:    202.5,
			Pressure:   1020,
		},
		Days: []DayRecord{
			{
				Date: "2024-01-25", TempMax: 33.1, TempMin: 21.4, WindDir: 200,
				Sunrise: "07:15:49", Sunset: "17:45:10", Hours: hours,
			},
			{
				Date: "2024-01-26", TempMax: 35.0, TempMin: 25.0, WindDir: 190,
				Sunrise: "07:14:52", Sunset: "17:46:24", Pressure: 1015,
				Hours: []HourRecord{{Time: "00:00:00", CloudCover: ptr(40), Conditions: "Partially cloudy"}},
			},
		},
	}
}

func TestAssembleReportClearDay(t *testing.T) {
	now := time.Date(2024, 1, 25, 14, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	rep, err := AssembleReport(clearTimeline(), 10, 2)
	require.NoError(t, err)

	assert.Equal(t, 30, rep.Current.Temp)
	assert.Equal(t, 25, rep.Current.Feels)
	assert.Equal(t, "Clear", rep.Current.Conditions)
	assert.Equal(t, 33, rep.Current.High)
	assert.Equal(t, 21, rep.Current.Low)
	assert.Equal(t, "SSW", rep.Current.WindDir)
	assert.InDelta(t, 30.12, rep.Current.Pressure, 0.001)
	assert.Equal(t, "Rising", rep.Current.PressureTrend.Label)
	assert.Equal(t, "06:45", rep.Current.FirstLight)
	assert.Equal(t, "18:15", rep.Current.LastLight)
	assert.Equal(t, "10:29", rep.Current.Daylight)

	assert.Equal(t, CondClear, rep.Today.Conditions)
	assert.Equal(t, "Full Moon", rep.Today.Moon.Name)
	assert.Nil(t, rep.Storm)
	assert.Equal(t, []Alert{}, rep.Alerts)
	assert.Len(t, rep.Hourly, 2)
	require.Len(t, rep.TenDay, 2)
	assert.Equal(t, CondMostlyCloudy, rep.TenDay[1].Conditions)
	assert.Equal(t, now, rep.GeneratedAt)
}

func TestAssembleReportSnowDay(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 25, 6, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	tl := clearTimeline()
	tl.Days[0].PrecipType = PrecipTypes{"snow"}
	tl.Days[0].Hours = []HourRecord{
		{Time: "02:00:00", Snow: 0.4, PrecipType: PrecipTypes{"snow"}, Conditions: "Snow, Overcast"},
		{Time: "03:00:00", Snow: 0.3, PrecipType: PrecipTypes{"snow"}, Conditions: "Snow, Overcast"},
	}

	rep, err := AssembleReport(tl, 10, 2)
	require.NoError(t, err)

	assert.Equal(t, CondSnow, rep.Today.Conditions)
	require.NotNil(t, rep.Storm)
	assert.Equal(t, "2024-01-25 02:00:00", rep.Storm.Start)
	assert.Equal(t, "2024-01-25 03:00:00", rep.Storm.End)
	assert.Equal(t, 0.7, rep.Storm.Total)
}

func TestAssembleReportSingleDay(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 25, 6, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	tl := clearTimeline()
	tl.Days = tl.Days[:1]
	tl.Days[0].Pressure = tl.CurrentConditions.Pressure

	rep, err := AssembleReport(tl, 10, 2)
	require.NoError(t, err)

	// With one day the trend reference falls back to today itself.
	assert.Equal(t, "Steady", rep.Current.PressureTrend.Label)
	assert.Len(t, rep.TenDay, 1)
}

func TestAssembleReportOutlookClamp(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 25, 6, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	tl := clearTimeline()
	for len(tl.Days) < 15 {
		tl.Days = append(tl.Days, DayRecord{Date: "2024-02-01"})
	}

	t.Run("default cap", func(t *testing.T) {
		rep, err := AssembleReport(tl, 10, 2)
		require.NoError(t, err)
		assert.Len(t, rep.TenDay, 10)
	})

	t.Run("out of range falls back to cap", func(t *testing.T) {
		rep, err := AssembleReport(tl, 50, 2)
		require.NoError(t, err)
		assert.Len(t, rep.TenDay, 10)
	})

	t.Run("shorter outlook honored", func(t *testing.T) {
		rep, err := AssembleReport(tl, 3, 2)
		require.NoError(t, err)
		assert.Len(t, rep.TenDay, 3)
	})
}

func TestAssembleReportAlertsPassthrough(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 25, 6, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	tl := clearTimeline()
	tl.Alerts = []Alert{
		{Event: "Winter Storm Warning", Headline: "Winter Storm Warning until 7 PM EST"},
		{Event: "Wind Advisory", Headline: "Wind Advisory until noon"},
	}

	rep, err := AssembleReport(tl, 10, 2)
	require.NoError(t, err)

	require.Len(t, rep.Alerts, 2)
	assert.Equal(t, "Winter Storm Warning", rep.Alerts[0].Event)
	assert.Equal(t, "Wind Advisory", rep.Alerts[1].Event)
}

func TestAssembleReportEmptyTimeline(t *testing.T) {
	_, err := AssembleReport(Timeline{}, 10, 2)
	assert.ErrorIs(t, err, ErrEmptyTimeline)
}
