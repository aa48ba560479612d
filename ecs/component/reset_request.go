package component

// ResetRequest asks the reset system to rebuild the world from level one.
type ResetRequest struct{}

var ResetRequestComponent = NewComponent[ResetRequest]()
