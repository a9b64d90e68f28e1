package components

import "github.com/yohamta/donburi"

type TargetData struct {
	PointsValue int
	Scoreboard  *donburi.Entry
	Hits        int
}

var Target = donburi.NewComponentType[TargetData]()
