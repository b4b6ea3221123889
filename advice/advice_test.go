package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestIsIndoor(t *testing.T) {
	cases := []struct {
		activity string
		want     bool
	}{
		{"Indoor games", true},
		{"CHESS tournament", true},
		{"carrom with friends", true},
		{"Video Game marathon", true},
		{"board game night", true},
		{"stay inside", true},
		{"Picnic", false},
		{"City hike", false},
		{"", false},
	}
	for _, c := range cases {
		t.Run(c.activity, func(t *testing.T) {
			assert.Equal(t, c.want, IsIndoor(c.activity))
		})
	}
}

func TestGenerateIndoorIgnoresWeather(t *testing.T) {
	assert.Equal(t, IndoorMessage, Generate("Chess club", ptr(40), 20, 50))
	assert.Equal(t, IndoorMessage, Generate("cHeSs", nil, 0, 0))
}

func TestGenerateMissingTemperature(t *testing.T) {
	assert.Equal(t, MissingDataMessage, Generate("Picnic", nil, 0, 0))
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		name     string
		activity string
		temp     float64
		rain     float64
		wind     float64
		want     string
	}{
		{
			name:     "favorable",
			activity: "Picnic",
			temp:     20, rain: 0, wind: 5,
			want: "For your outdoor activity 'Picnic', here's the forecast: " + FavorableMessage,
		},
		{
			name:     "beach too cool",
			activity: "Beach day",
			temp:     20, rain: 0, wind: 5,
			want: "For your outdoor activity 'Beach day', here's the forecast: " + TooCoolClause,
		},
		{
			name:     "hike in heavy rain",
			activity: "City hike",
			temp:     25, rain: 10, wind: 5,
			want: "For your outdoor activity 'City hike', here's the forecast: " + RainClause + SlipperyClause,
		},
		{
			name:     "hike in light rain",
			activity: "Hike",
			temp:     25, rain: 3, wind: 5,
			want: "For your outdoor activity 'Hike', here's the forecast: " + RainClause,
		},
		{
			name:     "all warnings in order",
			activity: "beach hike",
			temp:     36, rain: 6, wind: 31,
			want: "For your outdoor activity 'beach hike', here's the forecast: " +
				RainClause + HeatClause + WindClause + SlipperyClause,
		},
		{
			name:     "thresholds are exclusive",
			activity: "Cycling",
			temp:     35, rain: 1, wind: 30,
			want: "For your outdoor activity 'Cycling', here's the forecast: " + FavorableMessage,
		},
		{
			name:     "warm beach",
			activity: "Beach volleyball",
			temp:     28, rain: 0, wind: 5,
			want: "For your outdoor activity 'Beach volleyball', here's the forecast: " + FavorableMessage,
		},
		{
			name:     "windy only",
			activity: "Kite flying",
			temp:     18, rain: 0, wind: 45,
			want: "For your outdoor activity 'Kite flying', here's the forecast: " + WindClause,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Generate(c.activity, ptr(c.temp), c.rain, c.wind))
		})
	}
}

func TestGenerateBeachDay(t *testing.T) {
	got := Generate("Beach day", ptr(20), 0, 5)
	assert.Contains(t, got, TooCoolClause)
	assert.NotContains(t, got, FavorableMessage)
	assert.NotContains(t, got, RainClause)
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate("City hike", ptr(25), 10, 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate("City hike", ptr(25), 10, 5))
	}
}
