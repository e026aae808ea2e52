// Command seed generates a mock price dataset for local development. The
// output matches the CSV layout the API server loads at startup.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

var (
	states    = []string{"Andhra Pradesh", "Karnataka", "Telangana", "Maharashtra", "Tamil Nadu"}
	districts = []string{"Visakhapatnam", "Hyderabad", "Bengaluru", "Pune", "Chennai"}
	markets   = []string{"Main Market", "Wholesale Yard", "Central Mandai", "Local Market"}
	crops     = []string{"Tomato", "Onion", "Potato", "Rice", "Wheat"}
)

func main() {
	out := flag.String("out", "mock_prices.csv", "Output CSV path")
	rows := flag.Int("rows", 1000, "Number of rows to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"state", "district", "market", "crop", "date", "price", "unit"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	now := time.Now()
	for i := 0; i < *rows; i++ {
		daysAgo := rng.Intn(366)
		date := now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
		price := 8.0 + rng.Float64()*52.0
		row := []string{
			states[rng.Intn(len(states))],
			districts[rng.Intn(len(districts))],
			markets[rng.Intn(len(markets))],
			crops[rng.Intn(len(crops))],
			date,
			fmt.Sprintf("%.2f", price),
			"kg",
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("Failed to write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}

	log.Printf("Wrote %d rows to %s", *rows, *out)
}
