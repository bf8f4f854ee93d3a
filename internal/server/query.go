package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/internal/network"
	"github.com/gravitas-games/hextile/pkg/hex"
	"github.com/gravitas-games/hextile/pkg/models"
)

// queryError is a failure reported to the client with a stable code
type queryError struct {
	code string
	err  error
}

func (e *queryError) Error() string { return e.err.Error() }

func (e *queryError) Unwrap() error { return e.err }

func fail(code string, format string, args ...interface{}) error {
	return &queryError{code: code, err: fmt.Errorf(format, args...)}
}

// Handle answers one client message. The returned tile update, if any,
// should be broadcast to the other clients.
func (s *Session) Handle(player *models.Player, msg *network.ClientMessage) (reply, update *network.ServerMessage) {
	if msg.Type == network.MsgTypePing {
		return &network.ServerMessage{
			ID:      msg.ID,
			Type:    network.MsgTypePong,
			Payload: map[string]interface{}{"timestamp": time.Now().Unix()},
		}, nil
	}

	data, err := s.query(player, msg)
	if err != nil {
		code := "query_failed"
		var qe *queryError
		if errors.As(err, &qe) {
			code = qe.code
		}
		return &network.ServerMessage{
			ID:   msg.ID,
			Type: network.MsgTypeError,
			Payload: network.ErrorPayload{
				Code:    code,
				Message: err.Error(),
			},
		}, nil
	}

	reply = &network.ServerMessage{
		ID:   msg.ID,
		Type: network.MsgTypeResult,
		Payload: network.ResultPayload{
			Query: msg.Type,
			Data:  data,
		},
	}
	if msg.Type == network.MsgTypeTileSet {
		update = &network.ServerMessage{Type: network.MsgTypeTileUpdated, Payload: data}
	}
	return reply, update
}

func (s *Session) query(player *models.Player, msg *network.ClientMessage) (interface{}, error) {
	switch msg.Type {
	case network.MsgTypeConvert:
		c, err := decodeCube(msg.Payload)
		if err != nil {
			return nil, err
		}
		return network.Represent(c), nil

	case network.MsgTypeNeighbors:
		c, err := decodeCube(msg.Payload)
		if err != nil {
			return nil, err
		}
		res := network.NeighborsResult{
			Neighbors: make([]hex.Axial[int], 0, 6),
			Diagonals: make([]hex.Axial[int], 0, 6),
		}
		for i := 0; i < 6; i++ {
			res.Neighbors = append(res.Neighbors, c.Neighbor(hex.Direction(i)).ToAxial())
			res.Diagonals = append(res.Diagonals, c.DiagonalNeighbor(hex.Diagonal(i)).ToAxial())
		}
		return res, nil

	case network.MsgTypeRing, network.MsgTypeRange:
		var p network.RadiusPayload
		if err := decode(msg.Payload, &p); err != nil {
			return nil, err
		}
		if p.Radius > s.config.Session.MaxQueryRadius {
			return nil, fail("radius_too_large", "radius %d exceeds the limit of %d", p.Radius, s.config.Session.MaxQueryRadius)
		}
		center, err := p.Center.Cube()
		if err != nil {
			return nil, fail("invalid_coordinate", "%v", err)
		}
		var cells []hex.Cube[int]
		if msg.Type == network.MsgTypeRing {
			cells = center.Rings(p.Radius)
		} else {
			cells = center.CubicDistance(p.Radius)
		}
		res := network.CellsResult{Cells: make([]hex.Axial[int], len(cells))}
		for i, c := range cells {
			res.Cells[i] = c.ToAxial()
		}
		return res, nil

	case network.MsgTypeDistance:
		var p network.DistancePayload
		if err := decode(msg.Payload, &p); err != nil {
			return nil, err
		}
		from, err := p.From.Cube()
		if err != nil {
			return nil, fail("invalid_coordinate", "%v", err)
		}
		to, err := p.To.Cube()
		if err != nil {
			return nil, fail("invalid_coordinate", "%v", err)
		}
		return network.DistanceResult{Distance: from.Distance(to)}, nil

	case network.MsgTypeTileGet:
		c, err := decodeCube(msg.Payload)
		if err != nil {
			return nil, err
		}
		a := c.ToAxial()
		t, err := s.gameMap.Tile(a)
		if err != nil {
			return nil, tileError(err)
		}
		return tilePayload(a, t), nil

	case network.MsgTypeTileSet:
		if !player.Can(models.PermEditTiles) {
			return nil, fail("forbidden", "%s may not edit tiles", player.Username)
		}
		var p network.TileSetPayload
		if err := decode(msg.Payload, &p); err != nil {
			return nil, err
		}
		a, err := p.Coord.Axial()
		if err != nil {
			return nil, fail("invalid_coordinate", "%v", err)
		}
		terrain, err := gamemap.ParseTerrain(p.Terrain)
		if err != nil {
			return nil, fail("invalid_terrain", "%v", err)
		}
		t := gamemap.Tile{Terrain: terrain, Elevation: p.Elevation}
		if err := s.gameMap.SetTile(a, t); err != nil {
			return nil, tileError(err)
		}
		log.Printf("Tile %v set to %s by %s", a, terrain, player.Username)
		return tilePayload(a, t), nil
	}

	return nil, fail("unknown_message_type", "unknown message type %q", msg.Type)
}

func decode(raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fail("invalid_payload", "failed to parse payload: %v", err)
	}
	return nil
}

func decodeCube(raw json.RawMessage) (hex.Cube[int], error) {
	var c network.Coord
	if err := decode(raw, &c); err != nil {
		return hex.Cube[int]{}, err
	}
	cube, err := c.Cube()
	if err != nil {
		return hex.Cube[int]{}, fail("invalid_coordinate", "%v", err)
	}
	return cube, nil
}

func tileError(err error) error {
	switch {
	case errors.Is(err, gamemap.ErrOutOfBounds):
		return &queryError{code: "out_of_bounds", err: err}
	case errors.Is(err, gamemap.ErrNoTile):
		return &queryError{code: "no_tile", err: err}
	}
	return err
}

func tilePayload(a hex.Axial[int], t gamemap.Tile) network.TilePayload {
	return network.TilePayload{Coord: a, Terrain: t.Terrain.String(), Elevation: t.Elevation}
}
