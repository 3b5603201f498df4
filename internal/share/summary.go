package share

import (
	"fmt"
	"strings"
)

// Summary renders the plain-text share summary used for link previews and
// messaging apps.
func Summary(rec *Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-Day Trip to %s\n\n", rec.DurationDays, rec.Destination)

	doc := rec.Document
	if doc != nil {
		fmt.Fprintf(&b, "Total Cost: %.0f INR\n", doc.TotalCost.TotalForGroup)
		fmt.Fprintf(&b, "Per Person: %.0f INR\n\n", doc.TotalCost.TotalPerPerson)

		b.WriteString("Daily Highlights:\n")
		for _, day := range doc.Days {
			fmt.Fprintf(&b, "Day %d: %s\n", day.Day, day.Title)
			fmt.Fprintf(&b, "  - %d activities planned\n", len(day.Activities))
			if day.Accommodation != nil {
				fmt.Fprintf(&b, "  - Stay: %s\n", day.Accommodation.Name)
			}
			if day.Food != nil {
				fmt.Fprintf(&b, "  - Food: %s\n", day.Food.Recommendation)
			}
		}

		if doc.Recommendations.BestTimeToVisit != "" {
			fmt.Fprintf(&b, "\nBest Time to Visit: %s\n", doc.Recommendations.BestTimeToVisit)
		}
	}

	b.WriteString("\nGenerated by AI Travel Planner")
	return b.String()
}
