package domain

// QuickAction is a suggested canned follow-up message offered to the user.
type QuickAction struct {
	Text string `json:"text"`
}

// Reply is the transient result of processing one chat message.
type Reply struct {
	Answer          string        `json:"answer"`
	Recommendations []Product     `json:"recommendations"`
	QuickActions    []QuickAction `json:"quickActions"`
}

// NewReply returns a reply with non-nil slices so the wire format always
// carries arrays, never null.
func NewReply(answer string) Reply {
	return Reply{
		Answer:          answer,
		Recommendations: []Product{},
		QuickActions:    []QuickAction{},
	}
}
