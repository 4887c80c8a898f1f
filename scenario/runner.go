package scenario

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/scene"
	"github.com/lixenwraith/glowgrid/vmath"
)

// Row is the observable state after one frame
type Row struct {
	Frame    int64
	Position mgl32.Vec3
	Heading  float32
	Speed    float32
	Force    mgl32.Vec3

	Active      int
	Activated   []core.Entity
	Deactivated []core.Entity
	Contacts    int
	Skipped     []string
}

// Trace is the per-frame record of a run
type Trace []Row

// Run plays script against s and records every frame
// Cancelling ctx stops between frames and returns the partial trace with ctx.Err()
func Run(ctx context.Context, s *scene.Scene, script *Script) (Trace, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	if err := applyAvatarInit(s, script.Avatar); err != nil {
		return nil, err
	}

	trace := make(Trace, 0, script.Frames())
	for _, st := range script.Steps {
		intent, _ := st.Intent()
		for i := 0; i < st.count(); i++ {
			if err := ctx.Err(); err != nil {
				return trace, err
			}
			s.Step(intent, st.DT.Std())
			trace = append(trace, snapshot(s))
		}
	}
	return trace, nil
}

func applyAvatarInit(s *scene.Scene, init *AvatarInit) error {
	if init == nil {
		return nil
	}
	e, a, err := s.World.ControlledAvatar()
	if err != nil {
		return fmt.Errorf("scenario avatar setup: %w", err)
	}
	if len(init.Position) == 3 {
		a.Position = mgl32.Vec3{init.Position[0], init.Position[1], init.Position[2]}
	}
	a.ForwardSpeed = init.Speed
	a.Orientation = vmath.Yaw(mgl32.DegToRad(init.HeadingDeg))
	s.World.Avatars.Set(e, a)
	return nil
}

func snapshot(s *scene.Scene) Row {
	w := s.World
	frame := w.Resource.Frame
	row := Row{
		Frame:       w.Resource.Time.FrameNumber,
		Activated:   append([]core.Entity(nil), frame.Activated...),
		Deactivated: append([]core.Entity(nil), frame.Deactivated...),
		Skipped:     append([]string(nil), frame.SkippedPasses...),
	}
	if frame.Force != nil {
		row.Contacts = len(frame.Force.Contacts)
	}
	if _, a, err := w.ControlledAvatar(); err == nil {
		row.Position = a.Position
		row.Heading = vmath.Heading(a.Orientation)
		row.Speed = a.ForwardSpeed
		row.Force = a.OpposingForce
	}
	for _, e := range w.Fixtures.Entities() {
		if f, ok := w.Fixtures.Get(e); ok && f.IsActivated {
			row.Active++
		}
	}
	return row
}

// Write prints every nth row as an aligned table; the last row is always printed
func (t Trace) Write(out io.Writer, every int) error {
	if every < 1 {
		every = 1
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "frame\tx\tz\theading\tspeed\tactive\t+on\t-off\tcontacts")
	for i, r := range t {
		if i%every != 0 && i != len(t)-1 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.1f\t%.3f\t%d\t%d\t%d\t%d\n",
			r.Frame, r.Position.X(), r.Position.Z(), mgl32.RadToDeg(r.Heading), r.Speed,
			r.Active, len(r.Activated), len(r.Deactivated), r.Contacts)
	}
	return tw.Flush()
}
