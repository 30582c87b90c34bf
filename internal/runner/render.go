package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/gensyn-runner/internal/core"
)

// Visual characters for rendering
const (
	LaneChar     = '┊'
	EdgeChar     = '║'
	PlayerChar   = '▲'
	PlayerAir    = '△'
	ObstacleChar = '█'
	GemChar      = '◆'
	AlienChar    = '▼'
	MissileChar  = '↓'
	PortalChar   = '▒'
	GateChar     = '═'
	HeartChar    = '♥'
	EmptyHeart   = '♡'
)

// Track view geometry
const (
	laneCols  = 7    // Screen columns per lane
	viewAhead = 90.0 // Track units shown above the player
	viewBack  = 6.0  // Track units shown below the player
	HUDRows   = 2    // Rows reserved for the HUD at the top
)

// Render draws the current run to dst: the track seen from above, the HUD
// and the overlay of the current status.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot. It only reads the snapshot.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	top := HUDRows
	bottom := dst.Height() - 1
	if bottom <= top {
		return
	}

	drawTrack(dst, s, top, bottom)
	drawHUD(dst, s)

	switch s.Status {
	case StatusMenu.String():
		drawPanel(dst, []line{
			{"G E N S Y N   R U N N E R", core.ColorTeal},
			{"", core.ColorDefault},
			{"Collect the letters, break the layer.", core.ColorCream},
			{"←/→ lanes   ↑/W jump   SPACE shield", core.ColorGray},
			{"", core.ColorDefault},
			{"Press ENTER to start", core.ColorGold},
		})
	case StatusShop.String():
		drawShop(dst, s)
	case StatusGameOver.String():
		drawPanel(dst, []line{
			{"SYSTEM FAILURE", core.ColorDanger},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score %d   Layer %d   Gems %d", s.Score, s.Level, s.Gems), core.ColorCream},
			{"", core.ColorDefault},
			{"Press R to reboot", core.ColorGold},
		})
	case StatusVictory.String():
		drawPanel(dst, []line{
			{"NETWORK BREACHED", core.ColorGold},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score %d   Gems %d", s.Score, s.Gems), core.ColorCream},
			{"", core.ColorDefault},
			{"Press R to run again", core.ColorTeal},
		})
	}
}

// trackLayout maps track space to screen cells.
type trackLayout struct {
	left, top, height int
	lanes             int
	laneWidth         float64
}

func (l trackLayout) width() int { return l.lanes * laneCols }

// row returns the screen row for a track Z, or -1 when off view.
func (l trackLayout) row(z float64) int {
	if z < -viewAhead || z > viewBack {
		return -1
	}
	t := (z + viewAhead) / (viewAhead + viewBack)
	return l.top + int(t*float64(l.height-1)+0.5)
}

// col returns the screen column for a lane center.
func (l trackLayout) col(lane int) int {
	return l.left + (lane+l.lanes/2)*laneCols + laneCols/2
}

// colX returns the screen column for a continuous track X.
func (l trackLayout) colX(x float64) int {
	center := l.left + l.width()/2
	return center + int(math.Round(x/l.laneWidth*laneCols))
}

func drawTrack(dst *core.Screen, s Snapshot, top, bottom int) {
	lanes := max(s.LaneCount, 1)
	lay := trackLayout{
		left:      (dst.Width() - lanes*laneCols) / 2,
		top:       top,
		height:    bottom - top,
		lanes:     lanes,
		laneWidth: s.LaneWidth,
	}
	if lay.laneWidth <= 0 {
		lay.laneWidth = 1
	}

	for y := top; y < bottom; y++ {
		dst.SetColored(lay.left-1, y, EdgeChar, core.ColorMocha)
		dst.SetColored(lay.left+lay.width(), y, EdgeChar, core.ColorMocha)
		for i := 1; i < lanes; i++ {
			dst.SetColored(lay.left+i*laneCols, y, LaneChar, core.ColorMocha)
		}
	}

	for _, o := range s.Objects {
		if !o.Active {
			continue
		}
		y := lay.row(o.Z)
		if y < 0 {
			continue
		}
		drawObject(dst, lay, o, y)
	}

	if s.Status == StatusMenu.String() {
		return
	}
	py := lay.row(0)
	if py >= 0 && s.Player.Visible {
		px := lay.colX(s.Player.X)
		ch, color := PlayerChar, core.ColorCream
		if s.Player.Airborne {
			ch = PlayerAir
		}
		if s.Player.Shielded {
			color = core.ColorTeal
			dst.SetColored(px-1, py, '(', color)
			dst.SetColored(px+1, py, ')', color)
		}
		dst.SetColored(px, py, ch, color)
		if s.Player.Airborne {
			// Shadow marks the lane the player will land in.
			dst.SetColored(lay.col(s.Player.Lane), py+1, '·', core.ColorGray)
		}
	}
}

func drawObject(dst *core.Screen, lay trackLayout, o TrackObject, y int) {
	if o.Type.SpansTrack() {
		ch, color, label := PortalChar, core.ColorViolet, " SHOP "
		if o.Type == ObjectLayerGate {
			ch, color, label = GateChar, core.ColorGold, " LAYER GATE "
		}
		for x := lay.left; x < lay.left+lay.width(); x++ {
			dst.SetColored(x, y, ch, color)
		}
		start := lay.left + (lay.width()-len(label))/2
		dst.DrawTextColored(start, y, label, color)
		return
	}

	x := lay.col(o.Lane)
	switch o.Type {
	case ObjectObstacle:
		for dx := -2; dx <= 2; dx++ {
			dst.SetColored(x+dx, y, ObstacleChar, core.ColorDanger)
		}
	case ObjectGem:
		dst.SetColored(x, y, GemChar, core.ColorGold)
	case ObjectLetter:
		if o.LetterIndex >= 0 && o.LetterIndex < WordLength {
			dst.SetColored(x, y, rune(TargetWord[o.LetterIndex]), core.LetterColors[o.LetterIndex])
		}
	case ObjectAlien:
		dst.DrawTextColored(x-1, y, "<"+string(AlienChar)+">", core.ColorAccent)
	case ObjectMissile:
		dst.SetColored(x, y, MissileChar, core.ColorPlasma)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	var hearts strings.Builder
	for i := 0; i < s.MaxLives; i++ {
		if i < s.Lives {
			hearts.WriteRune(HeartChar)
		} else {
			hearts.WriteRune(EmptyHeart)
		}
	}
	dst.DrawTextColored(1, 0, hearts.String(), core.ColorDanger)

	score := fmt.Sprintf("SCORE %d", s.Score)
	dst.DrawTextCentered(0, score, core.ColorCream)

	info := fmt.Sprintf("LAYER %d/%d  SPD %d%%", s.Level, s.MaxLevel, s.SpeedPercent)
	dst.DrawTextColored(dst.Width()-len(info)-1, 0, info, core.ColorGray)

	x := (dst.Width() - 2*WordLength) / 2
	for i := 0; i < WordLength; i++ {
		color := core.ColorGray
		if s.Letters[i] {
			color = core.LetterColors[i]
		}
		dst.SetColored(x+2*i, 1, rune(TargetWord[i]), color)
	}

	switch {
	case s.ShieldLeft > 0:
		dst.DrawTextColored(1, 1, fmt.Sprintf("FIREWALL %.1fs", s.ShieldLeft.Seconds()), core.ColorTeal)
	case s.Immortality:
		dst.DrawTextColored(1, 1, "FIREWALL READY", core.ColorGray)
	}
	if s.DoubleJump {
		dst.DrawTextColored(dst.Width()-13, 1, "MULTI-THREAD", core.ColorGray)
	}
}

type line struct {
	text  string
	color core.Color
}

// drawPanel draws a centered box with the given lines.
func drawPanel(dst *core.Screen, lines []line) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	w += 6
	h := len(lines) + 4
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorMocha)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+2+i, l.text, l.color)
	}
}

func drawShop(dst *core.Screen, s Snapshot) {
	lines := []line{
		{"UPGRADE TERMINAL", core.ColorViolet},
		{fmt.Sprintf("Credits: %d", s.Score), core.ColorGold},
		{"", core.ColorDefault},
	}
	if len(s.Offers) == 0 {
		lines = append(lines, line{"No upgrades available", core.ColorGray})
	}
	for i, item := range s.Offers {
		color := core.ColorCream
		if s.Score < item.Cost {
			color = core.ColorGray
		}
		lines = append(lines,
			line{fmt.Sprintf("[%d] %-16s %5d", i+1, item.Name, item.Cost), color},
			line{item.Description, core.ColorGray},
		)
	}
	lines = append(lines,
		line{"", core.ColorDefault},
		line{"Press ENTER to resume", core.ColorTeal},
	)
	drawPanel(dst, lines)
}
