// Package core provides fundamental types and utilities for the flap game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

// HeroHitboxScale is the fraction of the hero's visual box that counts for
// collisions. The hitbox stays centred inside the visual box.
const HeroHitboxScale = 0.6

// Vec2 is a point or displacement in world pixels.
type Vec2 struct {
	X, Y float64
}

// Pt creates a new vector.
func Pt(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b without modifying either operand.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// AddTo adds b to a in place and returns a.
func AddTo(a *Vec2, b Vec2) *Vec2 {
	a.X += b.X
	a.Y += b.Y
	return a
}

// AddTo adds b to v in place and returns v.
func (v *Vec2) AddTo(b Vec2) *Vec2 {
	return AddTo(v, b)
}

// Equal reports whether both components match exactly.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Size is a width/height pair in world pixels.
type Size struct {
	Width, Height float64
}

// Box is an axis-aligned bounding box: the common shape of every entity that
// takes part in collisions.
type Box struct {
	Pos  Vec2
	Size Size
}

// Entity is anything that occupies a box in the world.
type Entity interface {
	Bounds() Box
}

// Bounds returns the box itself so a Box satisfies Entity.
func (b Box) Bounds() Box {
	return b
}

// Right returns the x-coordinate of the trailing (right) edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Height
}

// FarCorner returns the bottom-right corner.
func (b Box) FarCorner() Vec2 {
	return Vec2{X: b.Right(), Y: b.Bottom()}
}

// Between reports whether value lies between b1 and b2 in either order.
// The test is exclusive on the b1 side and inclusive on the b2 side:
// (b1 < v <= b2) or (b1 >= v > b2). Collision results depend on this exact
// edge policy.
func Between(value, b1, b2 float64) bool {
	return (b1 < value && value <= b2) || (b1 >= value && value > b2)
}

// Within reports whether p lies inside b according to Between on both axes.
func Within(p Vec2, b Box) bool {
	return Between(p.X, b.Pos.X, b.Right()) && Between(p.Y, b.Pos.Y, b.Bottom())
}

// Corners returns the four corners of b in absolute coordinates:
// top-left, top-right, bottom-left, bottom-right.
func Corners(b Box) [4]Vec2 {
	return [4]Vec2{
		Add(b.Pos, Pt(0, 0)),
		Add(b.Pos, Pt(b.Size.Width, 0)),
		Add(b.Pos, Pt(0, b.Size.Height)),
		b.FarCorner(),
	}
}

// AnyCornerWithin reports whether any corner of a lies within b.
func AnyCornerWithin(a, b Box) bool {
	for _, c := range Corners(a) {
		if Within(c, b) {
			return true
		}
	}
	return false
}

// HeroCollisionBounds shrinks the hero's visual box to HeroHitboxScale of its
// size, keeping it centred.
func HeroCollisionBounds(hero Box) Box {
	w := hero.Size.Width * HeroHitboxScale
	h := hero.Size.Height * HeroHitboxScale
	return Box{
		Pos: Vec2{
			X: hero.Pos.X + (hero.Size.Width-w)/2,
			Y: hero.Pos.Y + (hero.Size.Height-h)/2,
		},
		Size: Size{Width: w, Height: h},
	}
}

// Collides reports whether the hero's shrunken hitbox overlaps other.
// Both directions are checked so a box fully containing the other still hits.
func Collides(hero, other Box) bool {
	hit := HeroCollisionBounds(hero)
	if AnyCornerWithin(hit, other) {
		return true
	}
	return AnyCornerWithin(other, hit)
}

// IsOutOfBounds reports whether the entity's top edge is below lowerY.
// There is no ceiling check.
func IsOutOfBounds(b Box, lowerY float64) bool {
	return b.Pos.Y > lowerY
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
