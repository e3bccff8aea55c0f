package dag

// DialogueChoice represents a player response option in a story node.
// Each choice has an ID (sent back to server) and display text.
type DialogueChoice struct {
	ID   string `json:"id"`   // Unique identifier, e.g. "investigate", "cautious"
	Text string `json:"text"` // Display text shown to player
}

// TutorialTip provides gameplay hints alongside dialogue.
type TutorialTip struct {
	Title string `json:"title"` // Brief title, e.g. "Route Plotting"
	Text  string `json:"text"`
}

// Dialogue contains all presentation data for an active story node.
type Dialogue struct {
	Speaker       string           `json:"speaker"`                  // Name displayed above dialogue, e.g. "UNKNOWN SIGNAL"
	Text          string           `json:"text"`                     // Main dialogue text (supports \n newlines)
	Intent        string           `json:"intent"`                   // Visual theme: "factory" or "unit"
	ContinueLabel string           `json:"continue_label,omitempty"` // empty = "Continue"
	Choices       []DialogueChoice `json:"choices,omitempty"`        // empty = show continue button
	TutorialTip   *TutorialTip     `json:"tutorial_tip,omitempty"`
}

// ContinueText returns the label for the continue button.
func (d *Dialogue) ContinueText() string {
	if d == nil || d.ContinueLabel == "" {
		return "Continue"
	}
	return d.ContinueLabel
}
