package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/plus3/colortris/engine"
	"github.com/plus3/colortris/game"
)

type Report struct {
	// Run
	RunID    string
	Frontend string
	Seed     uint64
	Started  time.Time
	Elapsed  time.Duration

	// Results
	Score     int
	BestScore int
	Stats     game.Stats
	Updates   *engine.SchedulerStats
	Draws     *engine.SchedulerStats

	// Set by soak runs only
	Soak *SoakStats
}

func newReport(runID, frontend string, seed uint64, started time.Time, rt *game.Runtime) *Report {
	s := rt.Session()
	return &Report{
		RunID:     runID,
		Frontend:  frontend,
		Seed:      seed,
		Started:   started,
		Elapsed:   time.Since(started),
		Score:     s.Score,
		BestScore: max(s.Stats.BestScore, s.Score),
		Stats:     s.Stats,
		Updates:   rt.Updates.GetStats(),
		Draws:     rt.Draws.GetStats(),
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Color Tetris Session Report

## Run
- **Run ID:** {{.RunID}}
- **Front End:** {{.Frontend}}
- **Seed:** {{.Seed}}
- **Started:** {{.Started.Format "2006-01-02 15:04:05"}}
- **Wall Time:** {{dur .Elapsed}}
- **Play Time:** {{dur .Stats.PlayTime}}

## Results
- **Final Score:** {{comma .Score}}
- **Best Score:** {{comma .BestScore}}
- **Games:** {{.Stats.Games}} ({{.Stats.GameOvers}} game overs, {{.Stats.Restarts}} restarts)
- **Pieces:** {{comma .Stats.Spawned}} spawned, {{comma .Stats.Locked}} locked, {{comma .Stats.HardDrops}} hard drops
- **Lines:** {{comma .Stats.Lines}}
{{- range $n, $count := .Stats.Clears}}{{if and $n $count}}
  - **{{$n}}-line clears:** {{comma $count}}
{{- end}}{{end}}

## Systems
- **Update Frames:** {{comma .Updates.Frames}}
- **Draw Frames:** {{comma .Draws.Frames}}
{{with .Soak}}
## Soak
- **Simulated Frame:** {{.Frame}}
- **Updates:** {{comma .UpdateTime.Count}}
- **Inputs:** {{comma .Inputs}}
- **Update Time:** avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
- **Heap Alloc:** {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end)
- **Total Alloc:** {{bytes (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- **GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}
`

	fm := template.FuncMap{
		"comma": func(v any) string {
			switch val := v.(type) {
			case int:
				return humanize.Comma(int64(val))
			case int64:
				return humanize.Comma(val)
			default:
				return fmt.Sprint(v)
			}
		},
		"dur": func(d time.Duration) string {
			return d.Round(time.Millisecond).String()
		},
		"bytes": humanize.IBytes,
		"bsub": func(a, b uint64) uint64 {
			return a - b
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, r); err != nil {
		return err
	}

	r.systemTable(w)
	return nil
}

func (r *Report) systemTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scheduler", "System", "Runs", "Avg", "Max", "Total"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	for _, sched := range []struct {
		name  string
		stats *engine.SchedulerStats
	}{{"update", r.Updates}, {"draw", r.Draws}} {
		for _, sys := range sched.stats.Systems {
			table.Append([]string{
				sched.name,
				sys.Name,
				humanize.Comma(sys.ExecutionCount),
				sys.AvgDuration.String(),
				sys.MaxDuration.String(),
				sys.TotalDuration.String(),
			})
		}
	}

	table.Render()
}
