// Package scene parses the optional Wavefront-style scene text format
// (spec §6: "present in source") into live renderer batches and
// components. Grounded on the teacher's declarative SceneDef/LoadScene
// (scene.go) shape, adapted off ECS entity spawns onto direct
// renderer.Scene batch/component calls, and on model.go/material.go's
// line-oriented strings.Fields dispatch for the token grammar itself.
package scene

import (
	"strconv"
	"strings"

	"github.com/omerfuyar/shuildgo/model"
	"github.com/omerfuyar/shuildgo/renderer"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// instance owns one spawned component's transform. Allocated individually
// (rather than grown in a slice) so the pointers handed to
// renderer.Scene.CreateComponent stay valid for the instance's lifetime,
// per the reference-to-external-transform rule: the scene package is the
// external owner here, since the text format is the origin of these
// transforms.
type instance struct {
	position vmath.Vec3
	rotation vmath.Vec3
	scale    vmath.Vec3
}

// Loaded is the result of parsing one scene document: its name and every
// instance transform spawned, kept alive for the renderer components that
// reference them.
type Loaded struct {
	Name      string
	instances []*instance
}

// Load parses text against models (model name -> already-loaded model,
// resolved by the caller at setup time per spec §5's "no I/O on hot
// path") and spawns a batch per usemdl directive and a component per
// committed p/r/s triple into rs.
func Load(rs *renderer.Scene, models map[string]*model.Model, text string) (*Loaded, error) {
	loaded := &Loaded{}

	var currentBatch renderer.BatchHandle
	haveBatch := false
	var pendingPosition, pendingRotation vmath.Vec3

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "newscn":
			if len(fields) < 2 {
				return nil, parseErr("scene.Load newscn", nil)
			}
			loaded.Name = fields[1]

		case "usemdl":
			if len(fields) < 2 {
				return nil, parseErr("scene.Load usemdl", nil)
			}
			m, ok := models[fields[1]]
			if !ok {
				return nil, shuilderr.New(shuilderr.UnknownModel, "scene.Load usemdl "+fields[1], nil)
			}
			h, err := rs.CreateBatch(m)
			if err != nil {
				return nil, err
			}
			currentBatch = h
			haveBatch = true
			pendingPosition = vmath.Vec3{}
			pendingRotation = vmath.Vec3{}

		case "p":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, parseErr("scene.Load p", err)
			}
			pendingPosition = v

		case "r":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, parseErr("scene.Load r", err)
			}
			pendingRotation = v

		case "s":
			if !haveBatch {
				return nil, shuilderr.New(shuilderr.ParseUnexpectedToken, "scene.Load s before usemdl", nil)
			}
			scale, err := parseVec3(fields[1:])
			if err != nil {
				return nil, parseErr("scene.Load s", err)
			}

			inst := &instance{position: pendingPosition, rotation: pendingRotation, scale: scale}
			loaded.instances = append(loaded.instances, inst)

			if _, err := rs.CreateComponent(currentBatch, &inst.position, &inst.rotation, &inst.scale); err != nil {
				return nil, err
			}

			pendingPosition = vmath.Vec3{}
			pendingRotation = vmath.Vec3{}

		default:
			// unknown directives are ignored, matching material/model parsing
		}
	}

	return loaded, nil
}

func parseVec3(fields []string) (vmath.Vec3, error) {
	if len(fields) < 3 {
		return vmath.Vec3{}, shuilderr.New(shuilderr.ParseUnexpectedToken, "scene.parseVec3", nil)
	}
	var out vmath.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return vmath.Vec3{}, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseErr(op string, cause error) error {
	return shuilderr.New(shuilderr.ParseUnexpectedToken, op, cause)
}
