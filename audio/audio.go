// Package audio wraps an external spatial-audio engine behind the
// handle/free-list discipline the rest of the engine uses (C12): a
// listener and many sound components whose position is read from a
// caller-owned transform each frame. Grounded on the teacher pack's
// audio.Audio interface (gazed-vu/audio/audio.go) for the
// swappable-backend shape — no teacher dependency (webgpu/glfw/mathgl/
// uuid) covers audio, so the backend is named as an external
// collaborator per spec §1, exactly like gazed-vu treats its OpenAL
// binding as one implementation of a small interface.
package audio

import (
	"io"

	"github.com/omerfuyar/shuildgo/container"
	"github.com/omerfuyar/shuildgo/resource"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// Engine is the external spatial-audio collaborator: a sound source can
// be bound, positioned, rewound, and played/paused through it. An
// Engine implementation owns the actual driver handle each Source.Handle
// value names.
type Engine interface {
	BindSound(data []byte) (handle uint64, err error)
	ReleaseSound(handle uint64)
	SetSourcePosition(handle uint64, pos vmath.Vec3)
	SetSourceLooping(handle uint64, looping bool)
	RewindSource(handle uint64, fraction float32)
	PlaySource(handle uint64)
	IsPlaying(handle uint64) bool
	PlaceListener(pos, forward vmath.Vec3)
}

// Source is one sound component: a handle into the external engine plus
// the position it borrows each frame. Destroyed slots are recycled.
type Source struct {
	active   bool
	engine   Engine
	handle   uint64
	position *vmath.Vec3
	looping  bool
}

// Component identifies a live Source within a Scene.
type Component int

// Scene owns the listener and every sound component bound against it.
// One listener per scene, per spec §3.
type Scene struct {
	engine Engine
	root   *resource.Root

	listenerPosition *vmath.Vec3
	listenerForward  *vmath.Vec3

	sources *container.Array[Source]
	free    container.FreeList
}

// NewScene creates an audio scene wrapping engine, loading sound files
// relative to root, with the listener borrowing position/forward.
func NewScene(engine Engine, root *resource.Root, listenerPosition, listenerForward *vmath.Vec3) *Scene {
	return &Scene{
		engine:           engine,
		root:             root,
		listenerPosition: listenerPosition,
		listenerForward:  listenerForward,
		sources:          container.NewArray[Source](8),
	}
}

// Create loads file under the scene's resource root and binds it to a
// recycled (or new) handle slot, referencing position.
func (s *Scene) Create(position *vmath.Vec3, file string) (Component, error) {
	data, err := s.root.Open(file)
	if err != nil {
		return -1, err
	}
	defer data.Close()

	bytes, err := io.ReadAll(data)
	if err != nil {
		return -1, shuilderr.New(shuilderr.FileOpen, "audio.Scene.Create", err)
	}

	handle, err := s.engine.BindSound(bytes)
	if err != nil {
		return -1, shuilderr.New(shuilderr.DependencyInit, "audio.Scene.Create", err)
	}

	src := Source{active: true, engine: s.engine, handle: handle, position: position}
	idx := s.free.Create()
	if idx < s.sources.Count() {
		s.sources.Set(idx, src)
	} else {
		s.sources.Add(src)
	}
	return Component(idx), nil
}

// Destroy releases the bound sound and recycles the slot.
func (s *Scene) Destroy(c Component) {
	if !s.valid(c) {
		return
	}
	src := s.sources.Get(int(c))
	s.engine.ReleaseSound(src.handle)
	src.active = false
	s.free.Destroy(int(c))
}

func (s *Scene) valid(c Component) bool {
	if c < 0 || int(c) >= s.sources.Count() {
		return false
	}
	return s.sources.Get(int(c)).active
}

// SetLooping delegates to the engine and records the flag.
func (s *Scene) SetLooping(c Component, looping bool) {
	if !s.valid(c) {
		return
	}
	src := s.sources.Get(int(c))
	src.looping = looping
	s.engine.SetSourceLooping(src.handle, looping)
}

// Rewind seeks the source to fraction∈[0,1] of its total length, clamped.
func (s *Scene) Rewind(c Component, fraction float32) {
	if !s.valid(c) {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	s.engine.RewindSource(s.sources.Get(int(c)).handle, fraction)
}

// Play starts playback on the bound engine source.
func (s *Scene) Play(c Component) {
	if !s.valid(c) {
		return
	}
	s.engine.PlaySource(s.sources.Get(int(c)).handle)
}

// IsPlaying delegates to the engine.
func (s *Scene) IsPlaying(c Component) bool {
	if !s.valid(c) {
		return false
	}
	return s.engine.IsPlaying(s.sources.Get(int(c)).handle)
}

// Update writes every active source's position to the engine, then the
// listener's position and forward, per spec §4.9. Inactive components
// are skipped — they are never uploaded.
func (s *Scene) Update() {
	for i := 0; i < s.sources.Count(); i++ {
		src := s.sources.Get(i)
		if !src.active {
			continue
		}
		s.engine.SetSourcePosition(src.handle, *src.position)
	}
	s.engine.PlaceListener(*s.listenerPosition, *s.listenerForward)
}
