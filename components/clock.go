package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Now only moves forward.
type ClockData struct {
	Now  float64 // Seconds since the range started
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()
