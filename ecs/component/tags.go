package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type HazardTag struct{}

var HazardTagComponent = NewComponent[HazardTag]()
