package itinerary

import "fmt"

// miscellaneousRate is the flat buffer added on top of the categorized
// costs to cover incidentals.
const miscellaneousRate = 0.10

// AggregateCosts sums the per-category costs of the given day plans into a
// CostBreakdown. Accommodation and transportation are priced per group;
// activities and food are priced per person.
func AggregateCosts(days []DayPlan, people int) CostBreakdown {
	if people < 1 {
		people = 1
	}

	var cb CostBreakdown
	for _, day := range days {
		if day.Accommodation != nil {
			cb.Accommodation += day.Accommodation.EstimatedCost
		}
		if day.Transportation != nil {
			cb.Transportation += day.Transportation.EstimatedCost
		}
		if day.Food != nil {
			cb.Food += day.Food.EstimatedCost * float64(people)
		}
		for _, act := range day.Activities {
			cb.Activities += act.EstimatedCost * float64(people)
		}
	}

	subtotal := cb.Accommodation + cb.Transportation + cb.Activities + cb.Food
	cb.Miscellaneous = subtotal * miscellaneousRate
	cb.TotalForGroup = subtotal + cb.Miscellaneous
	cb.TotalPerPerson = cb.TotalForGroup / float64(people)
	return cb
}

// SummarizeBookings derives the booking summary from the day plans: every
// activity, accommodation or transport flagged as requiring advance booking
// goes to the advance list, the remaining priced activities to the instant
// list. EstimatedSavings assumes a 10% early-booking discount on the
// advance items.
func SummarizeBookings(days []DayPlan) BookingSummary {
	summary := BookingSummary{
		AdvanceBookingRequired:  []string{},
		InstantBookingAvailable: []string{},
	}

	var advanceTotal float64
	for _, day := range days {
		for _, act := range day.Activities {
			label := fmt.Sprintf("Day %d: %s", day.Day, act.Description)
			if act.BookingRequired {
				summary.AdvanceBookingRequired = append(summary.AdvanceBookingRequired, label)
				advanceTotal += act.EstimatedCost
			} else if act.EstimatedCost > 0 {
				summary.InstantBookingAvailable = append(summary.InstantBookingAvailable, label)
			}
		}
		if day.Accommodation != nil && day.Accommodation.BookingRequired {
			summary.AdvanceBookingRequired = append(summary.AdvanceBookingRequired,
				fmt.Sprintf("Day %d: %s", day.Day, day.Accommodation.Name))
			advanceTotal += day.Accommodation.EstimatedCost
		}
		if day.Transportation != nil && day.Transportation.BookingRequired {
			summary.AdvanceBookingRequired = append(summary.AdvanceBookingRequired,
				fmt.Sprintf("Day %d: %s", day.Day, day.Transportation.Mode))
			advanceTotal += day.Transportation.EstimatedCost
		}
	}

	summary.EstimatedSavings = advanceTotal * 0.10
	return summary
}
