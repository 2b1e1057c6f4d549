package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/colortris/game"
	"github.com/plus3/colortris/timer"
)

// SessionPanel shows the live state of the session: state machine, active
// piece, armed timers and the running stats.
type SessionPanel struct {
	rt *game.Runtime
}

func NewSessionPanel(rt *game.Runtime) *SessionPanel {
	return &SessionPanel{rt: rt}
}

type timerRow struct {
	Name      string
	Period    string
	Remaining string
}

func timerRows(statuses []timer.Status) []timerRow {
	rows := make([]timerRow, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, timerRow{
			Name:      game.TimerName(st.ID),
			Period:    st.Period.String(),
			Remaining: st.Remaining.String(),
		})
	}
	return rows
}

func (p *SessionPanel) Render() {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := p.rt.Session()
	imgui.Text(fmt.Sprintf("State: %s", s.State))
	imgui.Text(fmt.Sprintf("Score: %d", s.Score))
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d), rotation %d", s.Piece.Kind, s.Piece.X, s.Piece.Y, s.Piece.Rotation))
	imgui.Text(fmt.Sprintf("Clock: %s", s.Timers.Now()))

	if imgui.Button("Restart") {
		p.rt.Input().Press(game.KeyRestart)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		p.rt.Input().Press(game.KeyHardDrop)
	}

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("TimerTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Timer")
		imgui.TableSetupColumn("Period")
		imgui.TableSetupColumn("Remaining")
		imgui.TableHeadersRow()

		for _, row := range timerRows(s.Timers.Snapshot()) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(row.Period)
			imgui.TableNextColumn()
			imgui.Text(row.Remaining)
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Stats") {
		for _, line := range fieldLines(s.Stats) {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}
