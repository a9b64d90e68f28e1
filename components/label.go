package components

import "github.com/yohamta/donburi"

// LabelData is text shown on an object, e.g. a throwable's mass.
type LabelData struct {
	Text string
}

var Label = donburi.NewComponentType[LabelData]()
