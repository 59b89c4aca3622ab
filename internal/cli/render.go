package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// KindStyle is the rendering metadata for an action kind.
type KindStyle struct {
	Label string
	Icon  string
	Color lipgloss.Color
}

// kindStyles maps each action kind to how it is shown.
var kindStyles = map[model.ActionKind]KindStyle{
	model.ActionCompost: {Label: "Compost / Home Use", Icon: "🍂", Color: lipgloss.Color("#16A34A")},
	model.ActionReuse:   {Label: "Reuse at Home", Icon: "🏠", Color: lipgloss.Color("#2563EB")},
	model.ActionSell:    {Label: "Sell on Marketplace", Icon: "🛍️", Color: lipgloss.Color("#D97706")},
	model.ActionDispose: {Label: "Safe Disposal", Icon: "🗑️", Color: SubtleColor},
}

// categoryStyles maps each waste category to how it is shown.
var categoryStyles = map[model.Category]KindStyle{
	model.CategoryOrganic:       {Icon: "🍃", Color: lipgloss.Color("#16A34A")},
	model.CategoryRecyclable:    {Icon: "♻️", Color: PrimaryColor},
	model.CategoryHazardous:     {Icon: "⚠️", Color: ErrorColor},
	model.CategoryNonRecyclable: {Icon: "🗑️", Color: SubtleColor},
}

// StyleForKind returns rendering metadata for kind.
func StyleForKind(kind model.ActionKind) KindStyle {
	if s, ok := kindStyles[kind]; ok {
		return s
	}
	return KindStyle{Label: string(kind), Icon: "•", Color: SubtleColor}
}

// StyleForCategory returns rendering metadata for category.
func StyleForCategory(category model.Category) KindStyle {
	if s, ok := categoryStyles[category]; ok {
		return s
	}
	return KindStyle{Icon: "•", Color: SubtleColor}
}

var bestBadge = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(PrimaryColor).
	Padding(0, 1)

// RenderResult formats a classification: the material header, then actions in
// ranked order with the first marked as the best option.
func RenderResult(result *model.ClassificationResult) string {
	var b strings.Builder

	p := result.Profile
	cat := StyleForCategory(p.Category)

	header := fmt.Sprintf("%s %s", cat.Icon, BoldStyle.Render(p.Material))
	meta := SubtleStyle.Render(fmt.Sprintf("%s · %.0f%% confidence", p.Category, p.Confidence))
	b.WriteString(header + "\n" + meta)
	if price, ok := p.Price(); ok {
		b.WriteString("\n" + InfoStyle.Render(fmt.Sprintf("Est. value %s%.0f/kg", RupeeIcon, price)))
	}
	b.WriteString("\n\n")

	b.WriteString(BoldStyle.Render(SparkIcon+" What You Can Do") + "\n")
	for _, a := range result.Actions {
		b.WriteString(RenderAction(a, p.EstimatedPrice))
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderAction formats a single ranked action.
func RenderAction(a model.RankedAction, price *float64) string {
	kind := StyleForKind(a.Kind)
	label := lipgloss.NewStyle().Foreground(kind.Color).Render(kind.Label)

	line := fmt.Sprintf("%d. %s %s  %s", a.Rank, kind.Icon, BoldStyle.Render(a.Title), label)
	if a.Best {
		line += "  " + bestBadge.Render(SparkIcon+" Best Option")
	}
	line += "\n"

	if a.Description != "" {
		line += "   " + SubtleStyle.Render(a.Description) + "\n"
	}
	if a.Kind == model.ActionSell && price != nil {
		line += "   " + InfoStyle.Render(fmt.Sprintf("List on Marketplace · %s%.0f/kg", RupeeIcon, *price)) + "\n"
	}
	return line
}

// WriteCatalog writes a table of catalog profiles.
func WriteCatalog(w io.Writer, profiles []model.MaterialProfile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Material"),
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Confidence"),
		TableHeaderStyle.Render("Price/kg"),
		TableHeaderStyle.Render("Best Action"))

	for _, p := range profiles {
		price := SubtleStyle.Render("-")
		if v, ok := p.Price(); ok {
			price = fmt.Sprintf("%s%.0f", RupeeIcon, v)
		}
		best := bestTitle(p)
		fmt.Fprintf(tw, "%s\t%s\t%.0f%%\t%s\t%s\n", p.Material, p.Category, p.Confidence, price, best)
	}

	return tw.Flush()
}

// bestTitle avoids importing the advisor just to pick the minimum priority.
func bestTitle(p model.MaterialProfile) string {
	if len(p.Actions) == 0 {
		return ""
	}
	best := p.Actions[0]
	for _, a := range p.Actions[1:] {
		if a.Priority < best.Priority {
			best = a
		}
	}
	return best.Title
}

// WriteListings writes a table of marketplace listings.
func WriteListings(w io.Writer, listings []model.Listing) error {
	if len(listings) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No listings yet. Classify something sellable to list it."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("ID"),
		TableHeaderStyle.Render("Material"),
		TableHeaderStyle.Render("Weight"),
		TableHeaderStyle.Render("Price/kg"),
		TableHeaderStyle.Render("Location"),
		TableHeaderStyle.Render("Status"))

	for _, l := range listings {
		status := SuccessStyle.Render(string(l.Status))
		if l.Status == model.ListingSold {
			status = SubtleStyle.Render(string(l.Status))
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f kg\t%s%.0f\t%s\t%s\n",
			shortID(l.ID), l.Material, l.WeightKg, RupeeIcon, l.PricePerKg, l.Location, status)
	}
	return tw.Flush()
}

// WriteTrades writes the trade history.
func WriteTrades(w io.Writer, trades []model.Trade) error {
	if len(trades) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No trades yet."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range trades {
		sign := "+"
		if t.Action == model.TradeBought {
			sign = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s%.0f\t%s\n",
			t.At.Format("2006-01-02"), t.Material, t.Action, sign, RupeeIcon, t.Amount, t.Counterparty)
	}
	return tw.Flush()
}

// WriteCoverage writes a per-material histogram for a simulation run.
func WriteCoverage(w io.Writer, report service.CoverageReport, materials []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	ordered := append([]string(nil), materials...)
	for m := range report.Counts {
		if !contains(ordered, m) {
			ordered = append(ordered, m)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return report.Counts[ordered[i]] > report.Counts[ordered[j]]
	})

	for _, m := range ordered {
		n := report.Counts[m]
		share := 0.0
		if report.Runs > 0 {
			share = float64(n) / float64(report.Runs) * 100
		}
		bar := ProgressStyle.Render(strings.Repeat("█", int(share/2)))
		fmt.Fprintf(tw, "%s\t%d\t%5.1f%%\t%s\n", m, n, share, bar)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d runs, %d failures in %s", report.Runs, report.Failures, report.Duration.Round(1e6))
	if unreached := report.Unreached(materials); len(unreached) > 0 {
		_, err := fmt.Fprintln(w, FormatWarning(summary+"; never selected: "+strings.Join(unreached, ", ")))
		return err
	}
	_, err := fmt.Fprintln(w, FormatSuccess(summary+"; every material reached"))
	return err
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
