package kernel

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }

type EventID string

func NewEventID(id string) EventID { return EventID(id) }
func (e EventID) String() string   { return string(e) }
func (e EventID) IsEmpty() bool    { return string(e) == "" }
