package gamemap

import "fmt"

// Terrain is the payload kind of a tile. The zero value marks an empty slot
// in the dense backends.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	TerrainPlains
	TerrainForest
	TerrainMountain
	TerrainDesert
	TerrainSwamp
	TerrainTundra
	TerrainOcean
)

var terrainNames = [...]string{"none", "plains", "forest", "mountain", "desert", "swamp", "tundra", "ocean"}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// Valid reports whether t names a real terrain.
func (t Terrain) Valid() bool { return t > TerrainNone && int(t) < len(terrainNames) }

// ParseTerrain looks up a terrain by name.
func ParseTerrain(s string) (Terrain, error) {
	for i, name := range terrainNames {
		if i > 0 && name == s {
			return Terrain(i), nil
		}
	}
	return TerrainNone, fmt.Errorf("unknown terrain %q", s)
}

// MarshalText encodes the terrain by name.
func (t Terrain) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a terrain name.
func (t *Terrain) UnmarshalText(b []byte) error {
	v, err := ParseTerrain(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Tile is the per-cell payload.
type Tile struct {
	Terrain   Terrain `json:"terrain"`
	Elevation float64 `json:"elevation"`
}
