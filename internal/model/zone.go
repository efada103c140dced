package model

// ThermalZone is a conditioned space served by an air terminal or zone-level
// equipment. Zones are supplied to the builders by the caller; the builders
// only attach equipment.
type ThermalZone struct {
	Object
	Multiplier        int     `json:"multiplier"`
	HeatingSetpointC  float64 `json:"heating_setpoint_c"`
	CoolingSetpointC  float64 `json:"cooling_setpoint_c"`
	OutdoorAirM3sPerP float64 `json:"outdoor_air_m3s_per_person"`

	Equipment []ModelObject `json:"-"`
}

func NewThermalZone(m *Model, name string) *ThermalZone {
	z := &ThermalZone{
		Object:           m.newObject("ThermalZone", name),
		Multiplier:       1,
		HeatingSetpointC: 21.0,
		CoolingSetpointC: 24.0,
	}
	m.add(z)
	return z
}

// AddEquipment appends zone-level equipment in priority order.
func (z *ThermalZone) AddEquipment(eq ModelObject) {
	z.Equipment = append(z.Equipment, eq)
}

func (z *ThermalZone) EquipmentNames() []string {
	names := make([]string, 0, len(z.Equipment))
	for _, eq := range z.Equipment {
		names = append(names, eq.ObjectName())
	}
	return names
}
