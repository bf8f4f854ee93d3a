package network

import (
	"encoding/json"

	"github.com/gravitas-games/hextile/pkg/hex"
)

// Message types - Client → Server
const (
	MsgTypePing      = "ping"
	MsgTypeConvert   = "convert"
	MsgTypeNeighbors = "neighbors"
	MsgTypeRing      = "ring"
	MsgTypeRange     = "range"
	MsgTypeDistance  = "distance"
	MsgTypeTileGet   = "tile_get"
	MsgTypeTileSet   = "tile_set"
)

// Message types - Server → Client
const (
	MsgTypeWelcome     = "welcome"
	MsgTypeResult      = "result"
	MsgTypeTileUpdated = "tile_updated"
	MsgTypeError       = "error"
	MsgTypePong        = "pong"
)

// ClientMessage represents any message from client to server. ID is echoed
// on the reply so clients can match answers to queries.
type ClientMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents any message from server to client
type ServerMessage struct {
	ID      string      `json:"id,omitempty"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// --- Client Message Payloads ---

// RadiusPayload asks for the ring or filled range around Center
type RadiusPayload struct {
	Center Coord `json:"center"`
	Radius int   `json:"radius"`
}

// DistancePayload asks for the hex distance between two cells
type DistancePayload struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// TileSetPayload replaces the tile at Coord
type TileSetPayload struct {
	Coord     Coord   `json:"coord"`
	Terrain   string  `json:"terrain"`
	Elevation float64 `json:"elevation"`
}

// --- Server Message Payloads ---

// WelcomePayload is sent to client after successful connection
type WelcomePayload struct {
	ClientID  string     `json:"client_id"`
	Username  string     `json:"username"`
	SessionID string     `json:"session_id"`
	Map       MapSummary `json:"map"`
}

// MapSummary describes the map a session serves
type MapSummary struct {
	Radius  int    `json:"radius"`
	Backend string `json:"backend"`
	Tiles   int    `json:"tiles"`
	Layout  string `json:"layout"`
}

// ResultPayload wraps the answer to a query
type ResultPayload struct {
	Query string      `json:"query"`
	Data  interface{} `json:"data"`
}

// Representations is one cell in every coordinate system
type Representations struct {
	Cube         [3]int                         `json:"cube"`
	Axial        hex.Axial[int]                 `json:"axial"`
	DoubleHeight hex.DoubleHeight[int]          `json:"double_height"`
	DoubleWidth  hex.DoubleWidth[int]           `json:"double_width"`
	Offsets      map[hex.Layout]hex.Offset[int] `json:"offsets"`
}

// NeighborsResult lists the adjacent and diagonal cells, in direction order
type NeighborsResult struct {
	Neighbors []hex.Axial[int] `json:"neighbors"`
	Diagonals []hex.Axial[int] `json:"diagonals"`
}

// CellsResult lists cells in enumeration order
type CellsResult struct {
	Cells []hex.Axial[int] `json:"cells"`
}

// DistanceResult holds a hex distance
type DistanceResult struct {
	Distance int `json:"distance"`
}

// TilePayload carries one tile of the map
type TilePayload struct {
	Coord     hex.Axial[int] `json:"coord"`
	Terrain   string         `json:"terrain"`
	Elevation float64        `json:"elevation"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
