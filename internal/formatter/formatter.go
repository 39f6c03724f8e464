package formatter

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"panchayat/internal/models"

	"github.com/fatih/color"
)

// ResultsFormatter renders election reports and tiffin plans as text
type ResultsFormatter struct {
	out     io.Writer
	heading *color.Color
	winner  *color.Color
	reject  *color.Color
}

// New creates a new ResultsFormatter writing to out
func New(out io.Writer) *ResultsFormatter {
	return &ResultsFormatter{
		out:     out,
		heading: color.New(color.Bold),
		winner:  color.New(color.FgGreen, color.Bold),
		reject:  color.New(color.FgRed),
	}
}

// WriteReport renders a replayed scenario
func (f *ResultsFormatter) WriteReport(r models.Report) error {
	f.heading.Fprintf(f.out, "Election %s\n", r.ElectionID)
	fmt.Fprintf(f.out, "Voters registered: %d, rejected: %d\n", r.Registered, r.RejectedVoters)
	fmt.Fprintf(f.out, "Ballots accepted: %d of %d\n", r.Accepted(), len(r.Outcomes))

	for _, o := range r.Outcomes {
		if o.Accepted {
			continue
		}
		f.reject.Fprintf(f.out, "  rejected %s -> %s: %s\n", o.Ballot.VoterID, o.Ballot.CandidateID, o.Reason)
	}

	fmt.Fprintln(f.out)
	if err := f.WriteResults(r.Results, r.Winner); err != nil {
		return err
	}
	fmt.Fprintln(f.out)
	f.WriteWinner(r.Winner)

	if r.RegionTotal > 0 {
		fmt.Fprintf(f.out, "Offline regional count: %d\n", r.RegionTotal)
	}
	return nil
}

// WriteResults renders one row per candidate, highlighting the winner
func (f *ResultsFormatter) WriteResults(results []models.Result, winner *models.Candidate) error {
	f.heading.Fprintln(f.out, "Results")

	tw := tabwriter.NewWriter(f.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tCANDIDATE\tPARTY\tVOTES")
	for i, r := range results {
		row := fmt.Sprintf("%d\t%s\t%s\t%s\t%d", i+1, r.ID, r.Name, r.Party, r.Votes)
		if winner != nil && winner.ID == r.ID {
			row = f.winner.Sprint(row)
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

// WriteWinner renders the winner line
func (f *ResultsFormatter) WriteWinner(winner *models.Candidate) {
	if winner == nil {
		fmt.Fprintln(f.out, "Winner: none (no votes cast)")
		return
	}
	fmt.Fprint(f.out, "Winner: ")
	f.winner.Fprintf(f.out, "%s (%s)\n", winner.Name, winner.Party)
}

// WritePlan renders a single tiffin plan
func (f *ResultsFormatter) WritePlan(p models.Plan) {
	f.heading.Fprintf(f.out, "Tiffin plan for %s\n", p.Name)
	fmt.Fprintf(f.out, "Meal: %s\n", p.MealType)
	fmt.Fprintf(f.out, "Days: %d\n", p.Days)
	fmt.Fprintf(f.out, "Daily rate: Rs %d\n", p.DailyRate)
	if len(p.AddonNames) > 0 {
		fmt.Fprintf(f.out, "Add-ons: %s\n", strings.Join(p.AddonNames, ", "))
	}
	f.winner.Fprintf(f.out, "Total: Rs %d\n", p.TotalCost)
}

// WriteSummary renders the aggregate of several plans
func (f *ResultsFormatter) WriteSummary(s models.PlanSummary) {
	f.heading.Fprintln(f.out, "Tiffin summary")
	fmt.Fprintf(f.out, "Customers: %d\n", s.TotalCustomers)
	fmt.Fprintf(f.out, "Revenue: Rs %d\n", s.TotalRevenue)

	meals := make([]string, 0, len(s.MealBreakdown))
	for meal := range s.MealBreakdown {
		meals = append(meals, string(meal))
	}
	slices.Sort(meals)
	for _, meal := range meals {
		fmt.Fprintf(f.out, "  %s: %d\n", meal, s.MealBreakdown[models.MealType(meal)])
	}
}
