package flow

// PlaceholderLabel is the label of nodes created from the toolbar.
const PlaceholderLabel = "new_intent"

// PlaceholderPosition is where toolbar-created nodes appear.
var PlaceholderPosition = Position{X: 0, Y: 350}

// SeedNodes returns the nodes every new conversation starts with.
func SeedNodes() []Node {
	return []Node{
		{
			ID:       "1",
			Type:     NodeInput,
			Data:     NodeData{Label: "init_conversation"},
			Position: Position{X: 0, Y: 0},
		},
		{
			ID:       "3",
			Type:     NodeOutput,
			Data:     NodeData{Label: "end_conversation"},
			Position: Position{X: 0, Y: 250},
		},
	}
}

// NewPlaceholderNode returns a fresh default node with the given id.
func NewPlaceholderNode(id string) Node {
	return Node{
		ID:       id,
		Type:     NodeDefault,
		Data:     NodeData{Label: PlaceholderLabel},
		Position: PlaceholderPosition,
	}
}
