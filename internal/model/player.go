package model

// ClientPlayer is the label attached to a side, as exposed to clients.
// Identity stops at an opaque ID and a display name.
type ClientPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    Color  `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

// Players holds the two seats of a game. An empty ID means the seat is
// open.
type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}
