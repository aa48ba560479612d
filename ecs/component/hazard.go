package component

// Hazard marks an entity as deadly on overlap.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
