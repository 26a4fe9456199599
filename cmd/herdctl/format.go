package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"herd-analytics/internal/domain/analytics"
)

func writeReport(w io.Writer, rep analytics.Report) error {
	if !rep.DataAvailable {
		fmt.Fprintln(w, "herd data unavailable: showing empty report")
	}

	p := rep.Production
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Mode\t%s\n", rep.Mode)
	fmt.Fprintf(tw, "Animals\t%d\n", p.Count)
	fmt.Fprintf(tw, "Meat total\t%.1f kg\n", p.MeatTotal)
	fmt.Fprintf(tw, "Milk production\t%d L (%s)\n", p.MilkProduction, rep.Mode)
	fmt.Fprintf(tw, "Average weight\t%d kg\n", p.AverageWeight)
	fmt.Fprintf(tw, "Estimated value\t$%d\n", p.EstimatedValue)
	if err := tw.Flush(); err != nil {
		return err
	}

	section(w, "Average weight by breed")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range rep.Breeds {
		fmt.Fprintf(tw, "  %s\t%d kg\t%d\t%.0f%%\n", b.Breed, b.AverageWeight, b.Count, b.Share*100)
	}
	_ = tw.Flush()

	section(w, "Gender")
	for _, g := range rep.Genders {
		fmt.Fprintf(w, "  %s: %d\n", g.Gender, g.Count)
	}

	section(w, "Age (years)")
	for _, a := range rep.Ages {
		fmt.Fprintf(w, "  %s: %d\n", a.AgeGroup, a.Count)
	}

	section(w, "Top stables")
	for _, s := range rep.Stables {
		fmt.Fprintf(w, "  %s: %d\n", s.Stable, s.Count)
	}

	section(w, "Top vaccine types")
	for _, v := range rep.Vaccines {
		fmt.Fprintf(w, "  %s: %d\n", v.Type, v.Count)
	}

	section(w, "Heaviest")
	return writeAssessments(w, rep.TopHeaviest)
}

func writeAssessments(w io.Writer, items []analytics.Assessment) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBREED\tGENDER\tAGE\tWEIGHT\tMILK/DAY\t")
	for _, a := range items {
		src := "recorded"
		if a.Estimated {
			src = "estimated"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%.0f kg (%s)\t%.0f L\t\n",
			a.Animal.ID, a.Animal.Name, a.Animal.BreedLabel(), a.Animal.GenderLabel(), a.AgeYears, a.Weight, src, a.MilkPerDay)
	}
	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}
