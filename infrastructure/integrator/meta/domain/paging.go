package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// HasNext reports whether another page can be requested.
func (p *Paging) HasNext() bool {
	return p.Next != "" || p.Cursors.After != ""
}
