package model

// Zone-level packaged equipment. Each holds its child fan and coils by name so
// a model snapshot stays flat; the pointers are for in-process wiring.

type PTAC struct {
	Object
	ZoneName        string      `json:"zone_name"`
	FanPlacement    string      `json:"fan_placement"`
	ContinuousFan   bool        `json:"continuous_fan"`
	Fan             ModelObject `json:"-"`
	FanName         string      `json:"fan_name"`
	HeatingCoil     ModelObject `json:"-"`
	HeatingCoilName string      `json:"heating_coil_name"`
	CoolingCoil     *CoilCoolingDXSingleSpeed `json:"-"`
	CoolingCoilName string      `json:"cooling_coil_name"`
}

func NewPTAC(m *Model, name string, fan, heatingCoil ModelObject, coolingCoil *CoilCoolingDXSingleSpeed) *PTAC {
	p := &PTAC{
		Object:       m.newObject("ZoneHVAC:PackagedTerminalAirConditioner", name),
		FanPlacement: "DrawThrough",
	}
	if fan != nil {
		p.Fan = fan
		p.FanName = fan.ObjectName()
	}
	if heatingCoil != nil {
		p.HeatingCoil = heatingCoil
		p.HeatingCoilName = heatingCoil.ObjectName()
	}
	if coolingCoil != nil {
		p.CoolingCoil = coolingCoil
		p.CoolingCoilName = coolingCoil.Name
	}
	m.add(p)
	return p
}

type PTHP struct {
	Object
	ZoneName            string      `json:"zone_name"`
	FanPlacement        string      `json:"fan_placement"`
	Fan                 ModelObject `json:"-"`
	FanName             string      `json:"fan_name"`
	HeatingCoil         *CoilHeatingDXSingleSpeed `json:"-"`
	HeatingCoilName     string      `json:"heating_coil_name"`
	CoolingCoil         *CoilCoolingDXSingleSpeed `json:"-"`
	CoolingCoilName     string      `json:"cooling_coil_name"`
	SupplementalCoil    *CoilHeatingElectric `json:"-"`
	SupplementalCoilName string     `json:"supplemental_coil_name"`
}

func NewPTHP(m *Model, name string, fan ModelObject, heatingCoil *CoilHeatingDXSingleSpeed, coolingCoil *CoilCoolingDXSingleSpeed, supplemental *CoilHeatingElectric) *PTHP {
	p := &PTHP{
		Object:       m.newObject("ZoneHVAC:PackagedTerminalHeatPump", name),
		FanPlacement: "DrawThrough",
	}
	if fan != nil {
		p.Fan = fan
		p.FanName = fan.ObjectName()
	}
	if heatingCoil != nil {
		p.HeatingCoil = heatingCoil
		p.HeatingCoilName = heatingCoil.Name
	}
	if coolingCoil != nil {
		p.CoolingCoil = coolingCoil
		p.CoolingCoilName = coolingCoil.Name
	}
	if supplemental != nil {
		p.SupplementalCoil = supplemental
		p.SupplementalCoilName = supplemental.Name
	}
	m.add(p)
	return p
}

type UnitHeater struct {
	Object
	ZoneName        string      `json:"zone_name"`
	FanControlType  string      `json:"fan_control_type"`
	Fan             ModelObject `json:"-"`
	FanName         string      `json:"fan_name"`
	HeatingCoil     ModelObject `json:"-"`
	HeatingCoilName string      `json:"heating_coil_name"`
}

func NewUnitHeater(m *Model, name string, fan, heatingCoil ModelObject) *UnitHeater {
	u := &UnitHeater{
		Object:         m.newObject("ZoneHVAC:UnitHeater", name),
		FanControlType: "OnOff",
	}
	if fan != nil {
		u.Fan = fan
		u.FanName = fan.ObjectName()
	}
	if heatingCoil != nil {
		u.HeatingCoil = heatingCoil
		u.HeatingCoilName = heatingCoil.ObjectName()
	}
	m.add(u)
	return u
}

type FourPipeFanCoil struct {
	Object
	ZoneName              string            `json:"zone_name"`
	CapacityControlMethod string            `json:"capacity_control_method"`
	Fan                   *FanOnOff         `json:"-"`
	FanName               string            `json:"fan_name"`
	HeatingCoil           *CoilHeatingWater `json:"-"`
	HeatingCoilName       string            `json:"heating_coil_name"`
	CoolingCoil           *CoilCoolingWater `json:"-"`
	CoolingCoilName       string            `json:"cooling_coil_name"`
}

func NewFourPipeFanCoil(m *Model, name string, fan *FanOnOff, heatingCoil *CoilHeatingWater, coolingCoil *CoilCoolingWater) *FourPipeFanCoil {
	f := &FourPipeFanCoil{
		Object:                m.newObject("ZoneHVAC:FourPipeFanCoil", name),
		CapacityControlMethod: "CyclingFan",
	}
	if fan != nil {
		f.Fan = fan
		f.FanName = fan.Name
	}
	if heatingCoil != nil {
		f.HeatingCoil = heatingCoil
		f.HeatingCoilName = heatingCoil.Name
	}
	if coolingCoil != nil {
		f.CoolingCoil = coolingCoil
		f.CoolingCoilName = coolingCoil.Name
	}
	m.add(f)
	return f
}

type HighTempRadiant struct {
	Object
	ZoneName             string  `json:"zone_name"`
	FuelType             string  `json:"fuel_type"`
	ControlType          string  `json:"control_type"`
	CombustionEfficiency float64 `json:"combustion_efficiency"`
	FractionRadiant      float64 `json:"fraction_radiant"`
}

func NewHighTempRadiant(m *Model, name string) *HighTempRadiant {
	h := &HighTempRadiant{
		Object:               m.newObject("ZoneHVAC:HighTemperatureRadiant", name),
		FuelType:             FuelNaturalGas,
		ControlType:          "MeanAirTemperature",
		CombustionEfficiency: 0.8,
		FractionRadiant:      0.7,
	}
	m.add(h)
	return h
}

type ZoneWaterToAirHeatPump struct {
	Object
	ZoneName             string                         `json:"zone_name"`
	Fan                  *FanOnOff                      `json:"-"`
	FanName              string                         `json:"fan_name"`
	HeatingCoil          *CoilHeatingWaterToAirHeatPump `json:"-"`
	HeatingCoilName      string                         `json:"heating_coil_name"`
	CoolingCoil          *CoilCoolingWaterToAirHeatPump `json:"-"`
	CoolingCoilName      string                         `json:"cooling_coil_name"`
	SupplementalCoil     *CoilHeatingElectric           `json:"-"`
	SupplementalCoilName string                         `json:"supplemental_coil_name"`
}

func NewZoneWaterToAirHeatPump(m *Model, name string, fan *FanOnOff, heatingCoil *CoilHeatingWaterToAirHeatPump, coolingCoil *CoilCoolingWaterToAirHeatPump, supplemental *CoilHeatingElectric) *ZoneWaterToAirHeatPump {
	w := &ZoneWaterToAirHeatPump{Object: m.newObject("ZoneHVAC:WaterToAirHeatPump", name)}
	if fan != nil {
		w.Fan = fan
		w.FanName = fan.Name
	}
	if heatingCoil != nil {
		w.HeatingCoil = heatingCoil
		w.HeatingCoilName = heatingCoil.Name
	}
	if coolingCoil != nil {
		w.CoolingCoil = coolingCoil
		w.CoolingCoilName = coolingCoil.Name
	}
	if supplemental != nil {
		w.SupplementalCoil = supplemental
		w.SupplementalCoilName = supplemental.Name
	}
	m.add(w)
	return w
}
