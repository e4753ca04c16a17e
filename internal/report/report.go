package report

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/yegors/airpairs/internal/dataset"
	"github.com/yegors/airpairs/internal/flights"
)

// Render writes the dataset summary, the busiest pairs and the pairs with
// the largest time differences.
func Render(w io.Writer, ds *dataset.Dataset) error {
	pairs := ds.Pairs()

	fmt.Fprintf(w, "Dataset (%s): %s airports, %s flights, %s airport pairs\n",
		ds.Source,
		humanize.Comma(int64(len(ds.Airports))),
		humanize.Comma(int64(len(ds.Flights))),
		humanize.Comma(int64(len(pairs))),
	)

	if len(ds.Merged) > 0 {
		fmt.Fprintf(w, "\n%s\n", flights.FlightInfo(ds.Merged[0]))
	}

	timeStats, err := flights.TimeDifferenceStats(pairs)
	if errors.Is(err, flights.ErrEmptyInput) {
		fmt.Fprintln(w, "\nNo airport pairs with observed flights.")
		return nil
	}
	if err != nil {
		return err
	}

	// sorts pairs in place, so it runs after the time-difference copy
	countStats, err := flights.FlightCountStats(pairs)
	if err != nil {
		return err
	}

	if err := section(w, ds.Airports, "Busiest airport pairs", "flights", countStats, func(p flights.AirportPair) int {
		return p.NumberOfFlights
	}); err != nil {
		return err
	}
	return section(w, ds.Airports, "Greatest time differences", "hours", timeStats, func(p flights.AirportPair) int {
		return p.TimeDifference
	})
}

func section(w io.Writer, airports []flights.Airport, title, unit string, stats *flights.StatsSummary, value func(flights.AirportPair) int) error {
	fmt.Fprintf(w, "\n%s (%s): min %d, max %d, avg %s\n",
		title, unit, stats.Minimum, stats.Maximum, humanize.FtoaWithDigits(stats.Average, 3))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tAIRPORT 1\tAIRPORT 2\tDISTANCE\t"+unit)
	for i, p := range stats.TopTen {
		distance := "-"
		if nm, ok := flights.PairDistanceNM(airports, p); ok {
			distance = humanize.Comma(int64(nm+0.5)) + " nm"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s (%s)\t%s (%s)\t%s\t%d\n",
			humanize.Ordinal(i+1), p.ID,
			p.Airport1.Name, p.Airport1.IATA,
			p.Airport2.Name, p.Airport2.IATA,
			distance, value(p))
	}
	return tw.Flush()
}
