package models

// ReadFilter selects titles by aggregate read state.
type ReadFilter string

const (
	ReadAny       ReadFilter = ""
	ReadCompleted ReadFilter = "completed"
	ReadUnread    ReadFilter = "unread"
	ReadReading   ReadFilter = "reading"
)

// FilterState holds the active browse filters. Empty fields mean "no filter".
type FilterState struct {
	Genre  string     `json:"genre,omitempty"`
	Status string     `json:"status,omitempty"`
	Read   ReadFilter `json:"read,omitempty"`
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f.Genre == "" && f.Status == "" && f.Read == ReadAny
}
