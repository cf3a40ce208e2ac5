// Package model parses the engine's Wavefront OBJ dialect into a baked,
// multi-mesh model sharing one vertex pool (C8). Grounded on the teacher
// pack's OBJ reader (gazed-vu's load.Obj) for the line-tokenizing
// approach, generalized per spec §4.6: multiple meshes per file via
// `o`/`usemtl`, a non-standard `newmdl NAME` sentinel, and a caller-baked
// TRS offset instead of gazed-vu's per-vertex dedup-by-(v,t) pooling —
// this pool is keyed by vertex index alone, so a later face writing a
// different uv/normal for the same v overwrites the earlier one; this
// is a known limitation carried over unchanged, see DESIGN.md.
package model

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/omerfuyar/shuildgo/material"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// Vertex is GPU-attribute-ordered and packed: position, normal, uv.
type Vertex struct {
	Position vmath.Vec3
	Normal   vmath.Vec3
	UV       vmath.Vec2
}

// Mesh is one `o` block: an index buffer into the owning Model's shared
// vertex pool plus the material bound via the preceding `usemtl`.
type Mesh struct {
	Name     string
	Material *material.Material
	Indices  []uint32
}

// Model is a named, baked, multi-mesh object: one contiguous vertex pool
// shared by every mesh, already transformed by the offset supplied to Parse.
type Model struct {
	Name     string
	Vertices []Vertex
	Meshes   []Mesh
}

type faceRef struct {
	meshIdx                            int
	tokens                             []string
	vCount, vtCount, vnCount           int
}

// Parse reads the OBJ dialect out of text, resolving `usemtl` references
// against lib and baking every position/normal by offset (translate ·
// rotate-X · rotate-Y · rotate-Z · scale, per spec §4.6). offset is
// typically vmath.TRS(...) or the identity matrix.
func Parse(lib *material.Library, text string, offset vmath.Mat4) (*Model, error) {
	m := &Model{}

	var rawV []vmath.Vec3
	var rawVT []vmath.Vec2
	var rawVN []vmath.Vec3
	var faces []faceRef

	currentMaterial := ""
	haveMesh := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		tok := fields[0]
		args := fields[1:]

		switch tok {
		case "newmdl":
			if len(args) < 1 {
				return nil, parseErr(lineNo, "newmdl missing name", nil)
			}
			m.Name = args[0]
		case "v":
			v, err := parseVec3(args)
			if err != nil {
				return nil, parseErr(lineNo, "v", err)
			}
			rawV = append(rawV, vmath.TransformPoint(offset, v))
		case "vn":
			n, err := parseVec3(args)
			if err != nil {
				return nil, parseErr(lineNo, "vn", err)
			}
			rawVN = append(rawVN, vmath.TransformPoint(offset, n))
		case "vt":
			uv, err := parseVec2(args)
			if err != nil {
				return nil, parseErr(lineNo, "vt", err)
			}
			rawVT = append(rawVT, uv)
		case "usemtl":
			if len(args) < 1 {
				return nil, parseErr(lineNo, "usemtl missing name", nil)
			}
			if _, ok := lib.Get(args[0]); !ok {
				return nil, shuilderr.New(shuilderr.UnknownMaterial, "model.Parse",
					fmt.Errorf("line %d: unknown material %q", lineNo, args[0]))
			}
			currentMaterial = args[0]
		case "o":
			if len(args) < 1 {
				return nil, parseErr(lineNo, "o missing name", nil)
			}
			mat, ok := lib.Get(currentMaterial)
			if currentMaterial != "" && !ok {
				return nil, shuilderr.New(shuilderr.UnknownMaterial, "model.Parse",
					fmt.Errorf("line %d: unknown material %q", lineNo, currentMaterial))
			}
			m.Meshes = append(m.Meshes, Mesh{Name: args[0], Material: mat})
			haveMesh = true
		case "f":
			if !haveMesh {
				return nil, parseErr(lineNo, "f before any o", nil)
			}
			faces = append(faces, faceRef{
				meshIdx: len(m.Meshes) - 1,
				tokens:  args,
				vCount:  len(rawV), vtCount: len(rawVT), vnCount: len(rawVN),
			})
		default:
			// unrecognized directive (g, s, mtllib, ...), ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, shuilderr.New(shuilderr.ParseUnexpectedToken, "model.Parse", err)
	}

	m.Vertices = make([]Vertex, len(rawV))
	for i, p := range rawV {
		m.Vertices[i].Position = p
	}

	for _, fr := range faces {
		ops := fr.tokens
		if len(ops) < 3 {
			return nil, shuilderr.New(shuilderr.ParseUnexpectedToken, "model.Parse",
				fmt.Errorf("face needs at least 3 operands, got %d", len(ops)))
		}
		tris := triangulate(ops)
		for _, tri := range tris {
			for _, op := range tri {
				vIdx, err := m.resolveFace(op, fr, rawVT, rawVN)
				if err != nil {
					return nil, err
				}
				m.Meshes[fr.meshIdx].Indices = append(m.Meshes[fr.meshIdx].Indices, uint32(vIdx))
			}
		}
	}

	return m, nil
}

// triangulate fans a 3- or 4-operand face into one or two triangles:
// a quad (1,2,3,4) becomes (1,2,3) and (1,3,4), per spec §4.6.
func triangulate(ops []string) [][3]string {
	if len(ops) == 3 {
		return [][3]string{{ops[0], ops[1], ops[2]}}
	}
	return [][3]string{
		{ops[0], ops[1], ops[2]},
		{ops[0], ops[2], ops[3]},
	}
}

// resolveFace splits one "v/vt/vn" face operand, resolves negative
// indices relative to the counts captured when the face line was read,
// and writes the resolved uv/normal back into the pooled vertex named
// by v — overwriting whatever a previous face wrote there.
func (m *Model) resolveFace(op string, fr faceRef, rawVT []vmath.Vec2, rawVN []vmath.Vec3) (int, error) {
	parts := strings.Split(op, "/")
	vIdx, err := resolveIndex(parts[0], fr.vCount)
	if err != nil {
		return 0, parseErr(0, "face vertex index", err)
	}
	if vIdx < 0 || vIdx >= len(m.Vertices) {
		return 0, shuilderr.New(shuilderr.IndexOutOfRange, "model.Parse",
			fmt.Errorf("vertex index %d out of range", vIdx))
	}

	if len(parts) >= 2 && parts[1] != "" {
		vtIdx, err := resolveIndex(parts[1], fr.vtCount)
		if err != nil {
			return 0, parseErr(0, "face uv index", err)
		}
		if vtIdx < 0 || vtIdx >= len(rawVT) {
			return 0, shuilderr.New(shuilderr.IndexOutOfRange, "model.Parse",
				fmt.Errorf("uv index %d out of range", vtIdx))
		}
		m.Vertices[vIdx].UV = rawVT[vtIdx]
	}

	if len(parts) >= 3 && parts[2] != "" {
		vnIdx, err := resolveIndex(parts[2], fr.vnCount)
		if err != nil {
			return 0, parseErr(0, "face normal index", err)
		}
		if vnIdx < 0 || vnIdx >= len(rawVN) {
			return 0, shuilderr.New(shuilderr.IndexOutOfRange, "model.Parse",
				fmt.Errorf("normal index %d out of range", vnIdx))
		}
		m.Vertices[vIdx].Normal = rawVN[vnIdx]
	}

	return vIdx, nil
}

// resolveIndex turns a 1-based (or negative, relative-to-end) OBJ index
// into a 0-based pool index, against the count as of the face's line.
func resolveIndex(s string, countAtLine int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return countAtLine + n, nil
	}
	return n - 1, nil
}

func parseVec3(args []string) (vmath.Vec3, error) {
	if len(args) < 3 {
		return vmath.Vec3{}, fmt.Errorf("need 3 components, got %d", len(args))
	}
	var v vmath.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return vmath.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(args []string) (vmath.Vec2, error) {
	if len(args) < 2 {
		return vmath.Vec2{}, fmt.Errorf("need 2 components, got %d", len(args))
	}
	var v vmath.Vec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return vmath.Vec2{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseErr(lineNo int, what string, cause error) error {
	if lineNo > 0 {
		return shuilderr.New(shuilderr.ParseUnexpectedToken, "model.Parse",
			fmt.Errorf("line %d: %s: %w", lineNo, what, orNil(cause)))
	}
	return shuilderr.New(shuilderr.ParseUnexpectedToken, "model.Parse",
		fmt.Errorf("%s: %w", what, orNil(cause)))
}

func orNil(err error) error {
	if err == nil {
		return fmt.Errorf("malformed")
	}
	return err
}
