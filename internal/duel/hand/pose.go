package hand

// tipOffset is a fingertip position relative to the index fingertip.
type tipOffset struct {
	tip    int
	dx, dy float64
}

// Pointing pose: fingers extended well away from the wrist, index and middle
// tips close together. Both the spread and the pinch heuristics read it as drawing.
var (
	pointWrist   = Landmark{X: 0, Y: 0.25}
	pointOffsets = []tipOffset{
		{tip: ThumbTip, dx: -0.08, dy: 0.12},
		{tip: IndexTip},
		{tip: MiddleTip, dx: 0.02, dy: 0.01},
		{tip: RingTip, dx: 0.04, dy: 0.06},
		{tip: PinkyTip, dx: 0.07, dy: 0.1},
	}
)

// Resting pose: thumb, ring and pinky curled onto the wrist, index and middle
// tips held apart. Both heuristics read it as not drawing.
var (
	restWrist   = Landmark{X: 0, Y: 0.05}
	restOffsets = []tipOffset{
		{tip: ThumbTip, dx: 0.01, dy: 0.05},
		{tip: IndexTip},
		{tip: MiddleTip, dx: 0.1, dy: 0.05},
		{tip: RingTip, dx: 0.01, dy: 0.05},
		{tip: PinkyTip, dx: 0.01, dy: 0.05},
	}
)

// Synthesize builds a full landmark set whose index fingertip sits at tip.
// It stands in for a real detector in simulations and tests.
func Synthesize(tip Landmark, drawing bool) []Landmark {
	wristOffset, offsets := restWrist, restOffsets
	if drawing {
		wristOffset, offsets = pointWrist, pointOffsets
	}

	wrist := Landmark{X: tip.X + wristOffset.X, Y: tip.Y + wristOffset.Y}
	landmarks := make([]Landmark, NumLandmarks)
	landmarks[Wrist] = wrist

	for _, o := range offsets {
		t := Landmark{X: tip.X + o.dx, Y: tip.Y + o.dy}
		landmarks[o.tip] = t
		// three joints between the wrist and each fingertip
		for j := 1; j <= 3; j++ {
			f := float64(j) / 4
			landmarks[o.tip-4+j] = Landmark{
				X: wrist.X + (t.X-wrist.X)*f,
				Y: wrist.Y + (t.Y-wrist.Y)*f,
			}
		}
	}

	return landmarks
}
