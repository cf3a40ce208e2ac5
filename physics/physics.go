// Package physics implements the AABB collision scene (C11): components
// reference their position externally, velocity integrates under a
// shared gravity/drag, and overlapping pairs resolve by separating-axis
// positional correction plus an elastic velocity exchange. Grounded
// line-for-line on original_source/src/tools/Physics.c — the teacher's
// own physics.go models full rigid bodies (inertia tensors, sleeping)
// which is richer than this spec calls for, so the algorithm here is
// taken from the C original instead; see DESIGN.md.
package physics

import (
	"github.com/omerfuyar/shuildgo/container"
	"github.com/omerfuyar/shuildgo/vmath"
)

// resolveIterations is the fixed small constant spec §4.8 requires;
// matches original_source/include/tools/Physics.h.
const resolveIterations = 4

// Component is a handle into a Scene's parallel arrays.
type Component int

// body is one physics component's live state.
type body struct {
	active   bool
	position *vmath.Vec3 // external reference, never owned
	velocity vmath.Vec3
	half     vmath.Vec3 // collider half-extents
	mass     float32
	static   bool
}

// Scene owns every component created against it and the shared
// gravity/drag/elasticity that drives PhysicsComponent_Update.
type Scene struct {
	Drag       float32
	Gravity    float32
	Elasticity float32

	bodies *container.Array[body]
	free   container.FreeList
}

// NewScene clamps drag and elasticity into [0,1], matching
// PhysicsScene_Create.
func NewScene(gravity, drag, elasticity float32) *Scene {
	return &Scene{
		Drag:       clamp01(drag),
		Gravity:    gravity,
		Elasticity: clamp01(elasticity),
		bodies:     container.NewArray[body](8),
	}
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Create registers a new physics component referencing position (owned
// by the caller) and returns its handle, recycling a freed slot if one
// exists.
func (s *Scene) Create(position *vmath.Vec3, half vmath.Vec3, mass float32, static bool) Component {
	b := body{active: true, position: position, half: half, mass: mass, static: static}
	idx := s.free.Create()
	if idx < s.bodies.Count() {
		s.bodies.Set(idx, b)
	} else {
		s.bodies.Add(b)
	}
	return Component(idx)
}

// Destroy invalidates a component's handle and recycles its slot.
func (s *Scene) Destroy(c Component) {
	if !s.valid(c) {
		return
	}
	s.bodies.Get(int(c)).active = false
	s.free.Destroy(int(c))
}

func (s *Scene) valid(c Component) bool {
	if c < 0 || int(c) >= s.bodies.Count() {
		return false
	}
	return s.bodies.Get(int(c)).active
}

// SetVelocity overwrites a live component's velocity.
func (s *Scene) SetVelocity(c Component, v vmath.Vec3) {
	if !s.valid(c) {
		return
	}
	s.bodies.Get(int(c)).velocity = v
}

// Velocity returns a live component's current velocity.
func (s *Scene) Velocity(c Component) vmath.Vec3 {
	if !s.valid(c) {
		return vmath.Vec3{}
	}
	return s.bodies.Get(int(c)).velocity
}

// Update integrates every non-static component: gravity on y, then an
// unconditional velocity *= (1-drag) damping (a per-tick multiply, not a
// (1-drag)^dt correction — this is a known frame-rate-dependent behavior
// preserved unchanged, see DESIGN.md), then position += velocity*dt
// written through the external reference.
func (s *Scene) Update(dt float32) {
	for i := 0; i < s.bodies.Count(); i++ {
		b := s.bodies.Get(i)
		if !b.active || b.static {
			continue
		}
		b.velocity[1] += s.Gravity * dt
		b.velocity = b.velocity.Mul(1 - s.Drag)
		*b.position = b.position.Add(b.velocity.Mul(dt))
	}
}

// overlap returns the per-axis overlap (min-of-maxes minus max-of-mins)
// between two AABBs centered at a/b with half-extents ha/hb.
func overlap(a, b vmath.Vec3, ha, hb vmath.Vec3) vmath.Vec3 {
	return vmath.Vec3{
		minf(a[0]+ha[0], b[0]+hb[0]) - maxf(a[0]-ha[0], b[0]-hb[0]),
		minf(a[1]+ha[1], b[1]+hb[1]) - maxf(a[1]-ha[1], b[1]-hb[1]),
		minf(a[2]+ha[2], b[2]+hb[2]) - maxf(a[2]-ha[2], b[2]-hb[2]),
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// IsColliding reports whether two AABBs overlap on all three axes and
// returns the per-axis overlap amounts. Half-extents are taken as given
// (already half-sized, per spec §3's Physics Component data model).
func IsColliding(posA, halfA, posB, halfB vmath.Vec3) (bool, vmath.Vec3) {
	ov := overlap(posA, halfA, posB, halfB)
	return ov[0] > 0 && ov[1] > 0 && ov[2] > 0, ov
}

// ResolveCollisions runs the fixed iteration count of all-pairs
// resolution passes over every active component, matching
// PhysicsScene_ResolveCollisions.
func (s *Scene) ResolveCollisions() {
	for iter := 0; iter < resolveIterations; iter++ {
		n := s.bodies.Count()
		for i := 0; i < n-1; i++ {
			a := s.bodies.Get(i)
			if !a.active {
				continue
			}
			for j := i + 1; j < n; j++ {
				b := s.bodies.Get(j)
				if !b.active {
					continue
				}
				resolvePair(s.Elasticity, a, b)
			}
		}
	}
}

func resolvePair(elasticity float32, a, b *body) {
	colliding, ov := IsColliding(*a.position, a.half, *b.position, b.half)
	if !colliding {
		return
	}

	switch {
	case a.static:
		resolveStaticVsDynamic(elasticity, a, b)
	case b.static:
		resolveStaticVsDynamic(elasticity, b, a)
	default:
		resolveDynamicVsDynamic(elasticity, ov, a, b)
	}
}

// resolveStaticVsDynamic pushes dyn out along the minimum-overlap axis
// and reflects its velocity on that axis scaled by elasticity, matching
// PhysicsScene_ResolveStaticVsDynamic.
func resolveStaticVsDynamic(elasticity float32, static, dyn *body) {
	_, ov := IsColliding(*static.position, static.half, *dyn.position, dyn.half)
	axis := separatingAxis(ov)
	move := ov[axis]

	if (*dyn.position)[axis] < (*static.position)[axis] {
		(*dyn.position)[axis] -= move
	} else {
		(*dyn.position)[axis] += move
	}
	dyn.velocity[axis] = -dyn.velocity[axis] * elasticity
}

// resolveDynamicVsDynamic applies inverse-mass-proportional positional
// correction on the separating axis, then exchanges velocity on all
// three axes via the 1D elastic-collision formula with restitution e,
// matching PhysicsScene_ResolveDynamicVsDynamic.
func resolveDynamicVsDynamic(elasticity float32, ov vmath.Vec3, a, b *body) {
	axis := separatingAxis(ov)
	totalInvMass := 1/a.mass + 1/b.mass
	move1 := (1 / a.mass) / totalInvMass * ov[axis]
	move2 := (1 / b.mass) / totalInvMass * ov[axis]

	if (*a.position)[axis] < (*b.position)[axis] {
		(*a.position)[axis] -= move1
		(*b.position)[axis] += move2
	} else {
		(*a.position)[axis] += move1
		(*b.position)[axis] -= move2
	}

	// v1' = ((m1 - e*m2)*v1 + (1+e)*m2*v2) / (m1+m2); v2' symmetric.
	oneOverMassSum := 1 / (a.mass + b.mass)
	onePlusE := 1 + elasticity

	v1 := a.velocity
	v2 := b.velocity
	a.velocity = v1.Mul(a.mass - elasticity*b.mass).Add(v2.Mul(onePlusE * b.mass)).Mul(oneOverMassSum)
	b.velocity = v2.Mul(b.mass - elasticity*a.mass).Add(v1.Mul(onePlusE * a.mass)).Mul(oneOverMassSum)
}

// separatingAxis returns the index of ov's smallest component, the
// minimum-overlap axis along which two AABBs should be pushed apart.
func separatingAxis(ov vmath.Vec3) int {
	if ov[0] < ov[1] && ov[0] < ov[2] {
		return 0
	}
	if ov[1] < ov[2] {
		return 1
	}
	return 2
}
