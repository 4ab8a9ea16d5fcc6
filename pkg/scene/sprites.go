package scene

import "time"

// Role distinguishes the chased sprite from its pursuers.
type Role int

const (
	Protagonist Role = iota
	Pursuer
)

// Sprite is one decorative character on the lane.
type Sprite struct {
	Name   string
	Role   Role
	Color  string
	Offset float64 // horizontal phase offset in pixels, negative trails
}

// Choreography describes the fixed animation loop of all sprites.
type Choreography struct {
	// Period is the time to cross from the left to the right boundary.
	Period time.Duration
	// MouthPeriod is one full open-close cycle of the protagonist's mouth.
	MouthPeriod time.Duration
	// MouthAngles are the closed and open mouth rotations in degrees.
	MouthAngles [2]float64
	Sprites     []Sprite
}

// DefaultChoreography is one protagonist chased by the four classic ghosts.
func DefaultChoreography() Choreography {
	return Choreography{
		Period:      10 * time.Second,
		MouthPeriod: 200 * time.Millisecond,
		MouthAngles: [2]float64{0, 30},
		Sprites: []Sprite{
			{Name: "pacman", Role: Protagonist, Color: "#e8c125"},
			{Name: "blinky", Role: Pursuer, Color: "#ff0000", Offset: -40},
			{Name: "pinky", Role: Pursuer, Color: "#ffb8ff", Offset: -80},
			{Name: "inky", Role: Pursuer, Color: "#00ffff", Offset: -120},
			{Name: "clyde", Role: Pursuer, Color: "#ffb852", Offset: -160},
		},
	}
}

// Protagonists returns the sprites with the protagonist role.
func (c Choreography) Protagonists() []Sprite { return c.byRole(Protagonist) }

// Pursuers returns the sprites with the pursuer role.
func (c Choreography) Pursuers() []Sprite { return c.byRole(Pursuer) }

func (c Choreography) byRole(r Role) []Sprite {
	var out []Sprite
	for _, s := range c.Sprites {
		if s.Role == r {
			out = append(out, s)
		}
	}
	return out
}

// lane returns the vertical center of the sprite lane: the middle row.
func lane(g Geometry, rows int) float64 {
	_, y := g.CellCenter(rows/2, 0)
	return y
}
