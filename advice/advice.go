// Package advice turns an activity description and a forecast into a short
// recommendation for the person planning the activity.
package advice

import (
	"fmt"
	"strings"
)

// Messages returned without looking at the individual weather thresholds.
const (
	IndoorMessage      = "Since your activity is indoors, the outdoor weather won't affect your plans. Have a great time!"
	MissingDataMessage = "Cannot give advice due to missing weather data."
	FavorableMessage   = "Conditions look favorable for your event!"
)

// Clauses appended to the forecast sentence when their threshold is crossed.
const (
	RainClause     = "Rain is expected, which could impact your plans. Consider a backup. "
	HeatClause     = "It will be very hot. Ensure you have access to shade and water. "
	WindClause     = "It will be quite windy, which might be an issue. "
	SlipperyClause = "Heavy rain could make trails slippery. "
	TooCoolClause  = "It might be too cool for a comfortable beach day. "
)

// Thresholds in mm, Celsius and km/h.
const (
	rainThreshold      = 1.0
	heatThreshold      = 35.0
	windThreshold      = 30.0
	heavyRainThreshold = 5.0
	beachMinTemp       = 22.0
)

// indoorKeywords mark activities the outdoor weather cannot affect.
var indoorKeywords = []string{"indoor", "chess", "carrom", "video game", "board game", "inside"}

// IsIndoor reports whether the activity description names an indoor activity
func IsIndoor(activity string) bool {
	lower := strings.ToLower(activity)
	for _, keyword := range indoorKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Generate builds the recommendation for an activity.
// temp is nil when the provider returned no temperature; rain is in mm and
// wind in km/h.
func Generate(activity string, temp *float64, rain, wind float64) string {
	if IsIndoor(activity) {
		return IndoorMessage
	}
	if temp == nil {
		return MissingDataMessage
	}

	lower := strings.ToLower(activity)
	t := *temp

	var b strings.Builder
	fmt.Fprintf(&b, "For your outdoor activity '%s', here's the forecast: ", activity)

	warned := false
	warn := func(cond bool, clause string) {
		if cond {
			b.WriteString(clause)
			warned = true
		}
	}
	warn(rain > rainThreshold, RainClause)
	warn(t > heatThreshold, HeatClause)
	warn(wind > windThreshold, WindClause)
	warn(strings.Contains(lower, "hike") && rain > heavyRainThreshold, SlipperyClause)
	warn(strings.Contains(lower, "beach") && t < beachMinTemp, TooCoolClause)

	// A too-cool beach day is not favorable even when no primary threshold is crossed.
	if !warned {
		b.WriteString(FavorableMessage)
	}

	return b.String()
}
