package spec

import "github.com/vibelux/roomcfd/pkg/geo"

// SimulationConfig is the top-level specification for one airflow scenario.
// It is immutable for the duration of a solve.
type SimulationConfig struct {
	SpecVersion string          `yaml:"spec_version" json:"spec_version"`
	Room        RoomDef         `yaml:"room" json:"room"`
	Grid        GridDef         `yaml:"grid" json:"grid"`
	AmbientTemp float64         `yaml:"ambient_temp_c" json:"ambient_temp_c"`
	InletSpeed  float64         `yaml:"inlet_velocity" json:"inlet_velocity"`
	HeatSources []HeatSource    `yaml:"heat_sources" json:"heat_sources"`
	Boundaries  BoundarySet     `yaml:"boundaries" json:"boundaries"`
	Turbulence  TurbulenceModel `yaml:"turbulence_model" json:"turbulence_model"`
	Iterations  int             `yaml:"iterations" json:"iterations"`
	Tolerance   float64         `yaml:"tolerance" json:"tolerance"`
}

// RoomDef gives the enclosure dimensions in meters.
// Width spans X, Length spans Y, Height spans Z.
type RoomDef struct {
	Width  float64 `yaml:"width" json:"width"`
	Length float64 `yaml:"length" json:"length"`
	Height float64 `yaml:"height" json:"height"`
}

// Volume returns the room volume in cubic meters.
func (r RoomDef) Volume() float64 {
	return r.Width * r.Length * r.Height
}

// GridDef is the number of sample points per axis. Each must be at
// least 3 so interior points exist.
type GridDef struct {
	Nx int `yaml:"nx" json:"nx"`
	Ny int `yaml:"ny" json:"ny"`
	Nz int `yaml:"nz" json:"nz"`
}

// Cells returns the total number of grid points.
func (g GridDef) Cells() int {
	return g.Nx * g.Ny * g.Nz
}

// HeatSource is an axis-aligned box that dumps a fixed power into the
// air it encloses. Center is the box midpoint in room coordinates.
type HeatSource struct {
	Name   string   `yaml:"name" json:"name"`
	Center geo.Vec3 `yaml:"center" json:"center"`
	Power  float64  `yaml:"power_w" json:"power_w"`
	Width  float64  `yaml:"width" json:"width"`
	Length float64  `yaml:"length" json:"length"`
	Height float64  `yaml:"height" json:"height"`
}

// Volume returns the source box volume in cubic meters.
func (h HeatSource) Volume() float64 {
	return h.Width * h.Length * h.Height
}

// FaceType discriminates the boundary condition variants.
type FaceType string

const (
	FaceInlet    FaceType = "inlet"
	FaceOutlet   FaceType = "outlet"
	FaceWall     FaceType = "wall"
	FaceSymmetry FaceType = "symmetry"
)

// FaceCondition is one face's boundary condition. Velocity applies to
// inlet faces only (nil means inlet speed along the inward normal).
// Temperature pins the face temperature in °C; for walls nil leaves the
// face free to evolve with the energy equation.
type FaceCondition struct {
	Type        FaceType  `yaml:"type" json:"type"`
	Velocity    *geo.Vec3 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	Temperature *float64  `yaml:"temperature_c,omitempty" json:"temperature_c,omitempty"`
}

// Face names the six enclosure faces. West/east are the X extremes,
// south/north the Y extremes, floor/ceiling the Z extremes.
type Face string

const (
	FaceWest    Face = "west"
	FaceEast    Face = "east"
	FaceSouth   Face = "south"
	FaceNorth   Face = "north"
	FaceFloor   Face = "floor"
	FaceCeiling Face = "ceiling"
)

// AllFaces lists the six faces in a fixed order.
var AllFaces = []Face{FaceWest, FaceEast, FaceSouth, FaceNorth, FaceFloor, FaceCeiling}

// BoundarySet holds up to six named face conditions. A nil entry is
// treated as a plain adiabatic wall.
type BoundarySet struct {
	West    *FaceCondition `yaml:"west,omitempty" json:"west,omitempty"`
	East    *FaceCondition `yaml:"east,omitempty" json:"east,omitempty"`
	South   *FaceCondition `yaml:"south,omitempty" json:"south,omitempty"`
	North   *FaceCondition `yaml:"north,omitempty" json:"north,omitempty"`
	Floor   *FaceCondition `yaml:"floor,omitempty" json:"floor,omitempty"`
	Ceiling *FaceCondition `yaml:"ceiling,omitempty" json:"ceiling,omitempty"`
}

// Get returns the condition configured for the given face, or nil.
func (b *BoundarySet) Get(f Face) *FaceCondition {
	switch f {
	case FaceWest:
		return b.West
	case FaceEast:
		return b.East
	case FaceSouth:
		return b.South
	case FaceNorth:
		return b.North
	case FaceFloor:
		return b.Floor
	case FaceCeiling:
		return b.Ceiling
	}
	return nil
}

// InwardNormal returns the unit normal pointing into the room.
func (f Face) InwardNormal() geo.Vec3 {
	switch f {
	case FaceWest:
		return geo.V(1, 0, 0)
	case FaceEast:
		return geo.V(-1, 0, 0)
	case FaceSouth:
		return geo.V(0, 1, 0)
	case FaceNorth:
		return geo.V(0, -1, 0)
	case FaceFloor:
		return geo.V(0, 0, 1)
	case FaceCeiling:
		return geo.V(0, 0, -1)
	}
	return geo.Zero
}

// TurbulenceModel selects the viscosity closure. Only the laminar path
// has defined numeric behavior; the two-equation tags are accepted and
// fall back to laminar with a validation warning.
type TurbulenceModel string

const (
	TurbulenceLaminar  TurbulenceModel = "laminar"
	TurbulenceKEpsilon TurbulenceModel = "k-epsilon"
	TurbulenceKOmega   TurbulenceModel = "k-omega"
)
