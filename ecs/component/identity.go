package component

// Identity is the stable id of a placed entity, authored in level data or
// generated at load time.
type Identity struct {
	ID string
}

var IdentityComponent = NewComponent[Identity]()
