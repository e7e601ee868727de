package water

import (
	"context"
	"fmt"

	"github.com/Faultbox/wavefield/pkg/wave"
)

// Surface is a grid displaced by the wave field at one instant.
type Surface struct {
	Grid      *Grid
	Time      float32
	Positions []float32 // world xyz per vertex
	Normals   []float32 // unit xyz per vertex
	MinHeight float32
	MaxHeight float32
}

// Displace evaluates the field at every grid vertex at time t. p is copied, so
// the caller may keep tuning its own Params while the workers run.
func Displace(ctx context.Context, g *Grid, f wave.Field, t float32, p wave.Params) (*Surface, error) {
	n := g.VertexCount()
	s := &Surface{
		Grid:      g,
		Time:      t,
		Positions: make([]float32, n*3),
		Normals:   make([]float32, n*3),
	}
	rowMin := make([]float32, g.Side())
	rowMax := make([]float32, g.Side())

	err := forEachRow(ctx, g.Side(), func(j int) {
		lo, hi := float32(0), float32(0)
		for i := 0; i < g.Side(); i++ {
			x, z := g.WorldXZ(i, j)
			h := f.Height(x, z, t, &p)
			nrm := f.Normal(x, z, t, &p)

			k := g.Index(i, j) * 3
			s.Positions[k], s.Positions[k+1], s.Positions[k+2] = x, g.Origin.Y+h, z
			s.Normals[k], s.Normals[k+1], s.Normals[k+2] = nrm.X, nrm.Y, nrm.Z

			if i == 0 || h < lo {
				lo = h
			}
			if i == 0 || h > hi {
				hi = h
			}
		}
		rowMin[j], rowMax[j] = lo, hi
	})
	if err != nil {
		return nil, fmt.Errorf("displace: %w", err)
	}

	s.MinHeight, s.MaxHeight = rowMin[0], rowMax[0]
	for j := range rowMin {
		s.MinHeight = min(s.MinHeight, rowMin[j])
		s.MaxHeight = max(s.MaxHeight, rowMax[j])
	}
	return s, nil
}
