package game

// Publisher delivers engine events to whoever is listening on a subject.
type Publisher interface {
	PublishEvent(subject string, event any) error
}

// SpawnEvent is published when a PreThing enters or leaves the live world.
type SpawnEvent struct {
	Area  string `json:"area"`
	Type  string `json:"type"`
	Group Group  `json:"group"`
	ID    string `json:"id"`
	Box   Box    `json:"box"`
}

// DialogEvent is published when a character walks into someone with
// something to say.
type DialogEvent struct {
	Speaker     string `json:"speaker"`
	SpeakerType string `json:"speaker_type"`
	Listener    string `json:"listener"`
	Text        string `json:"text"`
}
