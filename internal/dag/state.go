package dag

// Status represents the current state of a node for a player.
type Status string

const (
	// StatusLocked means the node's requirements are not met.
	StatusLocked Status = "locked"
	// StatusAvailable means the node can be started.
	StatusAvailable Status = "available"
	// StatusInProgress means the node is currently being executed.
	StatusInProgress Status = "in_progress"
	// StatusCompleted means the node has been finished.
	StatusCompleted Status = "completed"
)

// NodeList is the player's view of the graph, in server order.
type NodeList struct {
	Nodes []Node `json:"nodes"`
}

// Get returns a node by ID, or nil if not found.
func (l *NodeList) Get(id NodeID) *Node {
	if l == nil {
		return nil
	}
	for i := range l.Nodes {
		if l.Nodes[i].ID == id {
			return &l.Nodes[i]
		}
	}
	return nil
}

// GetStatus returns the status of a node, defaulting to locked if not listed.
func (l *NodeList) GetStatus(id NodeID) Status {
	if node := l.Get(id); node != nil && node.Status != "" {
		return node.Status
	}
	return StatusLocked
}

// ByStatus returns the nodes currently in status, in list order.
func (l *NodeList) ByStatus(status Status) []Node {
	if l == nil {
		return nil
	}
	var out []Node
	for _, node := range l.Nodes {
		if node.Status == status {
			out = append(out, node)
		}
	}
	return out
}

// RemainingTime returns the remaining time in seconds for an active job.
// Returns 0 if the node is unknown or not in progress.
func (l *NodeList) RemainingTime(id NodeID) float64 {
	node := l.Get(id)
	if node == nil || node.Status != StatusInProgress {
		return 0
	}
	if node.RemainingS < 0 {
		return 0
	}
	return node.RemainingS
}

// Clone creates a deep copy of the list.
func (l *NodeList) Clone() *NodeList {
	if l == nil {
		return nil
	}
	clone := &NodeList{Nodes: make([]Node, len(l.Nodes))}
	for i, node := range l.Nodes {
		node.Effects = append([]UpgradeEffect(nil), node.Effects...)
		clone.Nodes[i] = node
	}
	return clone
}
