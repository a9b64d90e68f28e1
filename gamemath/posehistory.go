package gamemath

import "github.com/go-gl/mathgl/mgl64"

// PoseSample is a grip pose captured at a simulation time in seconds.
type PoseSample struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Time        float64
}

// PoseHistory keeps the grip poses recorded during the trailing Window seconds
// of a grab, oldest first.
//
// PoseHistory is not safe for concurrent use. Callers must record with a
// non-decreasing clock.
type PoseHistory struct {
	Window float64

	samples []PoseSample
	head    int
}

func NewPoseHistory(window float64) *PoseHistory {
	return &PoseHistory{Window: window}
}

// Reset drops every recorded sample. Called when a grab begins.
func (h *PoseHistory) Reset() {
	h.samples = h.samples[:0]
	h.head = 0
}

// Record appends a sample taken at now, then evicts from the front every
// sample older than Window.
func (h *PoseHistory) Record(position mgl64.Vec3, orientation mgl64.Quat, now float64) {
	h.samples = append(h.samples, PoseSample{
		Position:    position,
		Orientation: orientation,
		Time:        now,
	})

	for h.head < len(h.samples) && now-h.samples[h.head].Time > h.Window {
		h.head++
	}

	// Compact once the dead prefix outgrows the live window so the backing
	// array does not grow for the whole grab.
	if h.head > 0 && h.head >= len(h.samples)-h.head {
		n := copy(h.samples, h.samples[h.head:])
		h.samples = h.samples[:n]
		h.head = 0
	}
}

// Samples returns the retained samples, oldest first. The slice aliases the
// history's storage and must not be modified or kept past the next Record.
func (h *PoseHistory) Samples() []PoseSample {
	return h.samples[h.head:len(h.samples):len(h.samples)]
}

// Len returns the number of retained samples.
func (h *PoseHistory) Len() int {
	return len(h.samples) - h.head
}
