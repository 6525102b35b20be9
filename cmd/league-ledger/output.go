package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
)

func writeJSON(w io.Writer, v any) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(w io.Writer, result usecase.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "run\t%s\n", result.RunID)
	fmt.Fprintf(tw, "league\t%d %s\n", result.LeagueID, result.LeagueName)
	fmt.Fprintf(tw, "periods\t%d..%d\n", result.StartPeriod, result.MaxPeriod)
	fmt.Fprintf(tw, "history rows\t%d\n", len(result.History.Rows))
	fmt.Fprintf(tw, "teams without history\t%d\n", len(result.History.TeamsWithoutHistory))
	fmt.Fprintf(tw, "selection rows\t%d\n", len(result.Selections))
	fmt.Fprintf(tw, "transfers\t%d\n", len(result.Transfers))
	fmt.Fprintf(tw, "ledger rows\t%d\n", len(result.Ledger))
	fmt.Fprintf(tw, "fetch failures\t%d\n", result.FetchFailures)
	fmt.Fprintf(tw, "consistency (%s)\t%d errors\n", result.Consistency.Basis, result.Consistency.TotalErrors)
	fmt.Fprintf(tw, "elapsed\t%s\n", result.Elapsed)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.Consistency.Discrepancies) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tENTRY\tTEAM\tREPORTED\tOBSERVED")
	for _, d := range result.Consistency.Discrepancies {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\n", d.Period, d.EntryID, d.TeamName, d.Reported, d.Observed)
	}
	return tw.Flush()
}
