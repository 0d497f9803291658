package api

type ServerResponse struct {
	Data ServerData `json:"data"`
}

type ServerData struct {
	Type       string           `json:"type"`
	ID         string           `json:"id"`
	Attributes ServerAttributes `json:"attributes"`
}

type ServerAttributes struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	IP         string        `json:"ip"`
	Port       int           `json:"port"`
	Players    int           `json:"players"`
	MaxPlayers int           `json:"maxPlayers"`
	Rank       int           `json:"rank"`
	Status     string        `json:"status"`
	Country    string        `json:"country"`
	Details    ServerDetails `json:"details"`
}

// ServerDetails carries the game specific fields. The last wipe is kept as
// the raw string so that an odd format does not fail the whole response.
type ServerDetails struct {
	RustLastWipe  string `json:"rust_last_wipe"`
	RustType      string `json:"rust_type"`
	RustWorldSize int    `json:"rust_world_size"`
	Map           string `json:"map"`
}
