// Package material parses Wavefront MTL text into a de-duplicated
// material library (C7). Grounded on the teacher pack's MTL reader
// (gazed-vu's load.Mtl), generalized from "one material per file" to
// "library of named materials," per spec §4.6.
package material

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// Material is a single `newmtl` block's accumulated fields.
type Material struct {
	Name string

	Ambient  vmath.Vec3
	Emissive vmath.Vec3
	Diffuse  vmath.Vec3
	Specular vmath.Vec3

	SpecularExponent float32 // Ns
	RefractionIndex  float32 // Ni
	Dissolve         float32 // d, 1 = opaque
	Illum            int

	DiffuseMap string // texture name, empty if none
}

// Library is a name-keyed, de-duplicated material set: loading the same
// name twice returns the existing entry rather than a second copy.
type Library struct {
	byName map[string]*Material
	order  []*Material
}

// NewLibrary creates an empty material library.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]*Material)}
}

// Get looks up a material by name.
func (l *Library) Get(name string) (*Material, bool) {
	m, ok := l.byName[name]
	return m, ok
}

// Count returns the number of distinct materials in the library.
func (l *Library) Count() int {
	return len(l.order)
}

// All returns the materials in load order.
func (l *Library) All() []*Material {
	return l.order
}

// add inserts m, or returns the existing entry if name is already present.
func (l *Library) add(name string) *Material {
	if existing, ok := l.byName[name]; ok {
		return existing
	}
	m := &Material{Name: name, Dissolve: 1}
	l.byName[name] = m
	l.order = append(l.order, m)
	return m
}

// Parse reads Wavefront MTL directives from text and merges every
// `newmtl` block into lib, returning the materials parsed from this
// text in order. Unknown tokens are ignored silently per spec §4.6.
func Parse(lib *Library, text string) ([]*Material, error) {
	var parsed []*Material
	var current *Material

	scanner := bufio.NewScanner(strings.NewReader(text))
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
		case "newmtl":
			if len(args) < 1 {
				return nil, shuilderr.New(shuilderr.ParseUnexpectedToken,
					"material.Parse", fmt.Errorf("line %d: newmtl missing name", lineNo))
			}
			current = lib.add(args[0])
			parsed = append(parsed, current)
		case "Ns":
			if current == nil {
				continue
			}
			f, err := parseFloat(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.SpecularExponent = f[0]
		case "Ni":
			if current == nil {
				continue
			}
			f, err := parseFloat(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.RefractionIndex = f[0]
		case "d":
			if current == nil {
				continue
			}
			f, err := parseFloat(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.Dissolve = f[0]
		case "illum":
			if current == nil {
				continue
			}
			i, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return nil, shuilderr.New(shuilderr.ParseUnexpectedToken,
					"material.Parse", fmt.Errorf("line %d: illum: %w", lineNo, err))
			}
			current.Illum = i
		case "Ka":
			if current == nil {
				continue
			}
			v, err := parseVec3(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.Ambient = v
		case "Ke":
			if current == nil {
				continue
			}
			v, err := parseVec3(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.Emissive = v
		case "Kd":
			if current == nil {
				continue
			}
			v, err := parseVec3(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.Diffuse = v
		case "Ks":
			if current == nil {
				continue
			}
			v, err := parseVec3(args, lineNo, tok)
			if err != nil {
				return nil, err
			}
			current.Specular = v
		case "map_Kd":
			if current == nil {
				continue
			}
			if len(args) < 1 {
				continue
			}
			current.DiffuseMap = args[len(args)-1]
		default:
			// unknown directive, ignored per spec
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, shuilderr.New(shuilderr.ParseUnexpectedToken, "material.Parse", err)
	}
	return parsed, nil
}

func parseFloat(args []string, lineNo int, tok string) ([1]float32, error) {
	var out [1]float32
	if len(args) < 1 {
		return out, shuilderr.New(shuilderr.ParseUnexpectedToken,
			"material.Parse", fmt.Errorf("line %d: %s missing value", lineNo, tok))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 32)
	if err != nil {
		return out, shuilderr.New(shuilderr.ParseUnexpectedToken,
			"material.Parse", fmt.Errorf("line %d: %s: %w", lineNo, tok, err))
	}
	out[0] = float32(f)
	return out, nil
}

func parseVec3(args []string, lineNo int, tok string) (vmath.Vec3, error) {
	if len(args) < 3 {
		return vmath.Vec3{}, shuilderr.New(shuilderr.ParseUnexpectedToken,
			"material.Parse", fmt.Errorf("line %d: %s needs 3 components", lineNo, tok))
	}
	var v vmath.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 32)
		if err != nil {
			return vmath.Vec3{}, shuilderr.New(shuilderr.ParseUnexpectedToken,
				"material.Parse", fmt.Errorf("line %d: %s: %w", lineNo, tok, err))
		}
		v[i] = float32(f)
	}
	return v, nil
}
