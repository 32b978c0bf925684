package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sarchlab/parkinglot/datarecording"
	"github.com/sarchlab/parkinglot/timing"
	"github.com/sarchlab/parkinglot/tracing"
)

var listTasks bool

var reportCmd = &cobra.Command{
	Use:   "report <recording.sqlite3>",
	Short: "Summarize a recorded run.",
	Long: "Print the run information and the gate cycles and stays stored " +
		"in a recording made with --record.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(cmd.Context(), args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&listTasks, "tasks", false,
		"list every recorded task")
}

type kindSummary struct {
	count   int
	total   timing.VTimeInMs
	longest timing.VTimeInMs
}

func report(ctx context.Context, filename string, out io.Writer) error {
	reader, err := datarecording.NewReader(filename)
	if err != nil {
		return err
	}
	defer reader.Close()

	reader.MapTable(datarecording.ExecTableName, datarecording.ExecInfo{})
	reader.MapTable(tracing.TraceTableName, tracing.TaskTableEntry{})

	info, err := reader.Query(ctx, datarecording.ExecTableName,
		datarecording.QueryParams{})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Run")
	for _, row := range info {
		e := row.(*datarecording.ExecInfo)
		fmt.Fprintf(out, "  %s: %s\n", e.Property, e.Value)
	}

	tasks, err := reader.Query(ctx, tracing.TraceTableName,
		datarecording.QueryParams{OrderBy: "StartTime, Kind"})
	if err != nil {
		return err
	}

	summaries := make(map[string]*kindSummary)
	for _, row := range tasks {
		t := row.(*tracing.TaskTableEntry)
		span := timing.VTimeInMs(t.EndTime).Since(timing.VTimeInMs(t.StartTime))

		s, ok := summaries[t.Kind]
		if !ok {
			s = &kindSummary{}
			summaries[t.Kind] = s
		}

		s.count++
		s.total += span

		if span > s.longest {
			s.longest = span
		}
	}

	kinds := make([]string, 0, len(summaries))
	for k := range summaries {
		kinds = append(kinds, k)
	}

	sort.Strings(kinds)

	fmt.Fprintln(out, "Tasks")
	for _, k := range kinds {
		s := summaries[k]
		fmt.Fprintf(out, "  %-10s %4d  average %s  longest %s\n",
			k, s.count, s.total/timing.VTimeInMs(s.count), s.longest)
	}

	if !listTasks {
		return nil
	}

	for _, row := range tasks {
		t := row.(*tracing.TaskTableEntry)
		fmt.Fprintf(out, "  %s-%s %s %s @ %s\n",
			timing.VTimeInMs(t.StartTime), timing.VTimeInMs(t.EndTime),
			t.Kind, t.What, t.Location)
	}

	return nil
}
