package gamemap

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-games/hextile/pkg/hex"
)

const (
	seaLevel      = 0.28
	mountainLevel = 0.72
)

// terrainGen samples layered simplex noise at hex centers.
type terrainGen struct {
	elev, rain, temp opensimplex.Noise
	radius           float64
}

func newTerrainGen(seed int64, radius int) *terrainGen {
	return &terrainGen{
		elev:   opensimplex.NewNormalized(seed),
		rain:   opensimplex.NewNormalized(seed + 1),
		temp:   opensimplex.NewNormalized(seed + 2),
		radius: float64(max(radius, 1)),
	}
}

func (g *terrainGen) tile(a hex.Axial[int]) Tile {
	// axial -> cartesian for pointy-top hexes
	x := float64(a.Q) + float64(a.R)*0.5
	y := float64(a.R) * math.Sqrt(3) / 2

	elev := octaveNoise(g.elev, x, y, 4, 0.08, 0.5)
	rain := octaveNoise(g.rain, x, y, 3, 0.06, 0.5)
	temp := octaveNoise(g.temp, x, y, 3, 0.05, 0.5)

	// sink the rim so the map is ringed by ocean
	falloff := 1 - math.Pow(math.Sqrt(x*x+y*y)/g.radius, 3.5)
	elev *= math.Max(falloff, 0)
	temp = temp*0.6 + (1-math.Abs(y)/g.radius)*0.3 + (1-elev)*0.1

	return Tile{Terrain: deriveTerrain(elev, rain, temp), Elevation: elev}
}

func deriveTerrain(elev, rain, temp float64) Terrain {
	switch {
	case elev < seaLevel:
		return TerrainOcean
	case elev > mountainLevel:
		return TerrainMountain
	case temp < 0.25:
		return TerrainTundra
	case rain < 0.25 && temp > 0.5:
		return TerrainDesert
	case rain > 0.7 && elev < 0.45:
		return TerrainSwamp
	case rain > 0.45 && elev > 0.45:
		return TerrainForest
	}
	return TerrainPlains
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
