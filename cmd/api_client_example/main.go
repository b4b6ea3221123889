package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/goccy/go-json"

	"skysense/models"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "Base URL of the advice service")
	lat := flag.String("lat", "9.82", "Latitude")
	lon := flag.String("lon", "77.18", "Longitude")
	date := flag.String("date", time.Now().AddDate(0, 0, 1).Format("2006-01-02"), "Date (YYYY-MM-DD)")
	activity := flag.String("activity", "", "Activity description (empty uses the service default)")
	flag.Parse()

	fmt.Println("Activity Advice Client Example")
	fmt.Println("==============================")

	params := url.Values{}
	params.Set("lat", *lat)
	params.Set("lon", *lon)
	params.Set("date", *date)
	if *activity != "" {
		params.Set("activity", *activity)
	}
	analyzeURL := fmt.Sprintf("%s/api/analyze?%s", *baseURL, params.Encode())

	fmt.Printf("Requesting advice for %s,%s on %s...\n", *lat, *lon, *date)
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(analyzeURL)
	if err != nil {
		fmt.Printf("Error calling advice service: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}

	// Error bodies may arrive with a 200 status, so look at the payload
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		fmt.Printf("\nService returned an error (status %d): %s\n", resp.StatusCode, errResp.Error)
		os.Exit(1)
	}

	var advice models.AdviceResponse
	if err := json.Unmarshal(body, &advice); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nAnalysis from: %s\n", advice.Source)
	fmt.Printf("%s\n\n", advice.Advice)
	if advice.Details.Temperature != nil {
		fmt.Printf("Temp: %.1f°C\n", *advice.Details.Temperature)
	} else {
		fmt.Println("Temp: n/a")
	}
	fmt.Printf("Rain: %.1f mm\n", advice.Details.Rainfall)
	fmt.Printf("Wind: %.1f km/h\n", advice.Details.WindSpeed)
}
