// Package model is the in-memory building energy model the template builders
// assemble: thermal zones, plant and air loops, and the equipment hung off
// them. Objects are created through the New* constructors, which register the
// object with the model and hand out a unique name and handle.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

type ModelObject interface {
	ObjectHandle() uuid.UUID
	ObjectType() string
	ObjectName() string
}

// Object is embedded by every model type.
type Object struct {
	Handle uuid.UUID `json:"handle"`
	Type   string    `json:"type"`
	Name   string    `json:"name"`
}

func (o Object) ObjectHandle() uuid.UUID { return o.Handle }
func (o Object) ObjectType() string      { return o.Type }
func (o Object) ObjectName() string      { return o.Name }

type Model struct {
	objects []ModelObject
	names   map[string]int

	Zones      []*ThermalZone
	PlantLoops []*PlantLoop
	AirLoops   []*AirLoop
}

func New() *Model {
	return &Model{names: make(map[string]int)}
}

// newObject reserves a unique name and handle. Duplicate names get a numeric
// suffix the way the engine disambiguates ("VAV Fan", "VAV Fan 1", ...).
func (m *Model) newObject(objType, name string) Object {
	if name == "" {
		name = objType
	}
	unique := name
	if n, taken := m.names[name]; taken {
		unique = fmt.Sprintf("%s %d", name, n)
		m.names[name] = n + 1
	} else {
		m.names[name] = 1
	}
	return Object{Handle: uuid.New(), Type: objType, Name: unique}
}

func (m *Model) add(o ModelObject) {
	m.objects = append(m.objects, o)
	switch v := o.(type) {
	case *ThermalZone:
		m.Zones = append(m.Zones, v)
	case *PlantLoop:
		m.PlantLoops = append(m.PlantLoops, v)
	case *AirLoop:
		m.AirLoops = append(m.AirLoops, v)
	}
}

func (m *Model) Objects() []ModelObject {
	return m.objects
}

// ObjectsOfType returns every registered object of the given type name.
func (m *Model) ObjectsOfType(objType string) []ModelObject {
	var out []ModelObject
	for _, o := range m.objects {
		if o.ObjectType() == objType {
			out = append(out, o)
		}
	}
	return out
}

func (m *Model) ObjectCounts() map[string]int {
	counts := make(map[string]int)
	for _, o := range m.objects {
		counts[o.ObjectType()]++
	}
	return counts
}

func (m *Model) GetObjectByName(name string) ModelObject {
	for _, o := range m.objects {
		if o.ObjectName() == name {
			return o
		}
	}
	return nil
}

func (m *Model) GetPlantLoopByName(name string) *PlantLoop {
	for _, l := range m.PlantLoops {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (m *Model) GetAirLoopByName(name string) *AirLoop {
	for _, l := range m.AirLoops {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (m *Model) GetZoneByName(name string) *ThermalZone {
	for _, z := range m.Zones {
		if z.Name == name {
			return z
		}
	}
	return nil
}

// Float wraps a literal for the optional capacity/size fields. A nil field
// means the value is left for the engine to autosize.
func Float(v float64) *float64 {
	return &v
}
