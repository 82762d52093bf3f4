package domain

// GroupOutcome records what happened to a single transaction group
type GroupOutcome struct {
	TrxNo     string
	Posted    bool
	LineCount int
	ErrorKind ErrorKind `json:",omitempty"`
	ErrorMsg  string    `json:",omitempty"`
}

// BatchResult contains the outcome of one posting batch run
type BatchResult struct {
	RunID            string
	GroupsSeen       int
	GroupsPosted     int
	GroupsRejected   int
	LinesPosted      int
	RejectionsByKind map[ErrorKind]int
	Outcomes         []GroupOutcome
}
