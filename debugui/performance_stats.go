package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/colortris/engine"
	"github.com/plus3/colortris/game"
)

// PerformancePanel plots frame times and lists per-system timings for the
// update and draw schedulers.
type PerformancePanel struct {
	rt            *game.Runtime
	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformancePanel(rt *game.Runtime, historyFrames int) *PerformancePanel {
	return &PerformancePanel{
		rt:            rt,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// record stores a frame time in milliseconds and returns the average over
// the history window.
func (ps *PerformancePanel) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *PerformancePanel) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(ps.timer.GetDeltaTime())
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	renderSchedulerStats("Update Systems", ps.rt.Updates.GetStats())
	renderSchedulerStats("Draw Systems", ps.rt.Draws.GetStats())

	if imgui.TreeNodeStr("Resources") {
		for _, resourceType := range ps.rt.World.CollectStats().ResourceTypes {
			imgui.BulletText(resourceType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSchedulerStats(title string, stats *engine.SchedulerStats) {
	if !imgui.TreeNodeStr(fmt.Sprintf("%s (%d frames)", title, stats.Frames)) {
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV(title+"Table", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
		}

		imgui.EndTable()
	}
	imgui.TreePop()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
