package component

// Collectible marks a pickup that is removed on first contact with a player.
type Collectible struct {
	Kind  string
	Value int
}

var CollectibleComponent = NewComponent[Collectible]()
