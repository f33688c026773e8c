package request

type GameRequest struct {
	Title      string `json:"title"`
	MinPlayers int    `json:"min_players,omitempty"`
	MaxPlayers int    `json:"max_players,omitempty"`
	Shelf      string `json:"shelf,omitempty"`
}
