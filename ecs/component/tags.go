package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Solid marks platforms and ground.
type Solid struct{}

var SolidComponent = NewComponent[Solid]()

// Goal marks an entity whose overlap with the player completes the level.
type Goal struct{}

var GoalComponent = NewComponent[Goal]()
