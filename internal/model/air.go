package model

// SizingSystem carries the air-loop sizing inputs the engine reads.
type SizingSystem struct {
	TypeOfLoad              string  `json:"type_of_load"` // Sensible, Total, VentilationRequirement
	CentralCoolingSupplyC   float64 `json:"central_cooling_supply_c"`
	CentralHeatingSupplyC   float64 `json:"central_heating_supply_c"`
	AllOutdoorAirInCooling  bool    `json:"all_outdoor_air_in_cooling"`
	AllOutdoorAirInHeating  bool    `json:"all_outdoor_air_in_heating"`
	MinimumSystemAirFlowRatio float64 `json:"minimum_system_air_flow_ratio"`
}

type AirLoop struct {
	Object
	SystemType        string       `json:"system_type"`
	NightCycleControl string       `json:"night_cycle_control"`
	Sizing            SizingSystem `json:"sizing"`

	SupplyComponents []ModelObject            `json:"-"`
	SetpointManager  ModelObject              `json:"-"`
	Terminals        map[string]ModelObject   `json:"-"` // zone name -> terminal
	AvailabilitySchedule *ScheduleRuleset     `json:"-"`
}

func NewAirLoop(m *Model, name string) *AirLoop {
	l := &AirLoop{
		Object:    m.newObject("AirLoopHVAC", name),
		Terminals: make(map[string]ModelObject),
	}
	m.add(l)
	return l
}

func (l *AirLoop) AddSupplyComponent(c ModelObject) {
	l.SupplyComponents = append(l.SupplyComponents, c)
}

func (l *AirLoop) SupplyComponentNames() []string {
	names := make([]string, 0, len(l.SupplyComponents))
	for _, c := range l.SupplyComponents {
		names = append(names, c.ObjectName())
	}
	return names
}

func (l *AirLoop) SupplyComponentsOfType(objType string) []ModelObject {
	var out []ModelObject
	for _, c := range l.SupplyComponents {
		if c.ObjectType() == objType {
			out = append(out, c)
		}
	}
	return out
}

// AttachTerminal wires a zone's terminal into the loop's demand side.
func (l *AirLoop) AttachTerminal(zone *ThermalZone, terminal ModelObject) {
	l.Terminals[zone.Name] = terminal
	zone.AddEquipment(terminal)
}

type OutdoorAirSystem struct {
	Object
	EconomizerControlType string   `json:"economizer_control_type"` // NoEconomizer, DifferentialDryBulb, DifferentialEnthalpy
	MinimumOAFlowM3s      *float64 `json:"minimum_oa_flow_m3s"`
	MaximumOAFraction     float64  `json:"maximum_oa_fraction"`
}

func NewOutdoorAirSystem(m *Model, name string) *OutdoorAirSystem {
	oa := &OutdoorAirSystem{
		Object:                m.newObject("AirLoopHVAC:OutdoorAirSystem", name),
		EconomizerControlType: "NoEconomizer",
		MaximumOAFraction:     1.0,
	}
	m.add(oa)
	return oa
}

// Fans.

type FanVariableVolume struct {
	Object
	PressureRisePa          float64  `json:"pressure_rise_pa"`
	FanEfficiency           float64  `json:"fan_efficiency"`
	MotorEfficiency         float64  `json:"motor_efficiency"`
	MaximumFlowM3s          *float64 `json:"maximum_flow_m3s"`
	MinimumFlowFraction     float64  `json:"minimum_flow_fraction"`
	PowerCoefficient1       float64  `json:"power_coefficient_1"`
	PowerCoefficient2       float64  `json:"power_coefficient_2"`
	PowerCoefficient3       float64  `json:"power_coefficient_3"`
	PowerCoefficient4       float64  `json:"power_coefficient_4"`
}

func NewFanVariableVolume(m *Model, name string) *FanVariableVolume {
	f := &FanVariableVolume{
		Object:              m.newObject("Fan:VariableVolume", name),
		FanEfficiency:       0.6045,
		MotorEfficiency:     0.93,
		MinimumFlowFraction: 0.25,
	}
	m.add(f)
	return f
}

type FanConstantVolume struct {
	Object
	PressureRisePa  float64  `json:"pressure_rise_pa"`
	FanEfficiency   float64  `json:"fan_efficiency"`
	MotorEfficiency float64  `json:"motor_efficiency"`
	MaximumFlowM3s  *float64 `json:"maximum_flow_m3s"`
}

func NewFanConstantVolume(m *Model, name string) *FanConstantVolume {
	f := &FanConstantVolume{
		Object:          m.newObject("Fan:ConstantVolume", name),
		FanEfficiency:   0.6045,
		MotorEfficiency: 0.93,
	}
	m.add(f)
	return f
}

type FanOnOff struct {
	Object
	PressureRisePa  float64  `json:"pressure_rise_pa"`
	FanEfficiency   float64  `json:"fan_efficiency"`
	MotorEfficiency float64  `json:"motor_efficiency"`
	MaximumFlowM3s  *float64 `json:"maximum_flow_m3s"`
}

func NewFanOnOff(m *Model, name string) *FanOnOff {
	f := &FanOnOff{
		Object:          m.newObject("Fan:OnOff", name),
		FanEfficiency:   0.5,
		MotorEfficiency: 0.85,
	}
	m.add(f)
	return f
}

type FanZoneExhaust struct {
	Object
	MaximumFlowM3s *float64 `json:"maximum_flow_m3s"`
	PressureRisePa float64  `json:"pressure_rise_pa"`
	FanEfficiency  float64  `json:"fan_efficiency"`
	ZoneName       string   `json:"zone_name"`

	AvailabilitySchedule     *ScheduleConstant `json:"-"`
	AvailabilityScheduleName string            `json:"availability_schedule_name"`
}

func (f *FanZoneExhaust) SetAvailabilitySchedule(s *ScheduleConstant) {
	f.AvailabilitySchedule = s
	f.AvailabilityScheduleName = s.Name
}

func NewFanZoneExhaust(m *Model, name string) *FanZoneExhaust {
	f := &FanZoneExhaust{
		Object:        m.newObject("Fan:ZoneExhaust", name),
		FanEfficiency: 0.6,
	}
	m.add(f)
	return f
}

// Coils.

type CoilHeatingWater struct {
	Object
	InletWaterTempC  float64 `json:"inlet_water_temp_c"`
	OutletWaterTempC float64 `json:"outlet_water_temp_c"`
	PlantLoopName    string  `json:"plant_loop_name"`
}

// NewCoilHeatingWater attaches the coil to the hot water loop's demand side.
func NewCoilHeatingWater(m *Model, name string, loop *PlantLoop) *CoilHeatingWater {
	c := &CoilHeatingWater{
		Object:           m.newObject("Coil:Heating:Water", name),
		InletWaterTempC:  82.2,
		OutletWaterTempC: 71.1,
	}
	if loop != nil {
		c.PlantLoopName = loop.Name
		loop.AddDemandComponent(c)
	}
	m.add(c)
	return c
}

type CoilCoolingWater struct {
	Object
	DesignInletWaterTempC float64 `json:"design_inlet_water_temp_c"`
	PlantLoopName         string  `json:"plant_loop_name"`
}

func NewCoilCoolingWater(m *Model, name string, loop *PlantLoop) *CoilCoolingWater {
	c := &CoilCoolingWater{
		Object:                m.newObject("Coil:Cooling:Water", name),
		DesignInletWaterTempC: 6.7,
	}
	if loop != nil {
		c.PlantLoopName = loop.Name
		loop.AddDemandComponent(c)
	}
	m.add(c)
	return c
}

type CoilHeatingGas struct {
	Object
	Efficiency       float64  `json:"efficiency"`
	NominalCapacityW *float64 `json:"nominal_capacity_w"`
}

func NewCoilHeatingGas(m *Model, name string) *CoilHeatingGas {
	c := &CoilHeatingGas{Object: m.newObject("Coil:Heating:Gas", name), Efficiency: 0.80}
	m.add(c)
	return c
}

type CoilHeatingElectric struct {
	Object
	Efficiency       float64  `json:"efficiency"`
	NominalCapacityW *float64 `json:"nominal_capacity_w"`
}

func NewCoilHeatingElectric(m *Model, name string) *CoilHeatingElectric {
	c := &CoilHeatingElectric{Object: m.newObject("Coil:Heating:Electric", name), Efficiency: 1.0}
	m.add(c)
	return c
}

type CoilCoolingDXSingleSpeed struct {
	Object
	RatedCOP       float64  `json:"rated_cop"`
	RatedCapacityW *float64 `json:"rated_capacity_w"`

	CapFT    *CurveBiquadratic `json:"-"`
	CapFFlow *CurveQuadratic   `json:"-"`
	EIRFT    *CurveBiquadratic `json:"-"`
	EIRFFlow *CurveQuadratic   `json:"-"`
	PLF      *CurveQuadratic   `json:"-"`

	CapFTName string `json:"cap_ft_name"`
	EIRFTName string `json:"eir_ft_name"`
	PLFName   string `json:"plf_name"`
}

func NewCoilCoolingDXSingleSpeed(m *Model, name string) *CoilCoolingDXSingleSpeed {
	c := &CoilCoolingDXSingleSpeed{Object: m.newObject("Coil:Cooling:DX:SingleSpeed", name), RatedCOP: 3.0}
	m.add(c)
	return c
}

func (c *CoilCoolingDXSingleSpeed) SetCurves(capFT *CurveBiquadratic, capFFlow *CurveQuadratic, eirFT *CurveBiquadratic, eirFFlow, plf *CurveQuadratic) {
	c.CapFT, c.CapFFlow, c.EIRFT, c.EIRFFlow, c.PLF = capFT, capFFlow, eirFT, eirFFlow, plf
	c.CapFTName, c.EIRFTName, c.PLFName = capFT.Name, eirFT.Name, plf.Name
}

type CoilCoolingDXTwoSpeed struct {
	Object
	RatedHighSpeedCOP float64  `json:"rated_high_speed_cop"`
	RatedLowSpeedCOP  float64  `json:"rated_low_speed_cop"`
	RatedCapacityW    *float64 `json:"rated_capacity_w"`

	CapFT   *CurveBiquadratic `json:"-"`
	EIRFT   *CurveBiquadratic `json:"-"`
	PLF     *CurveQuadratic   `json:"-"`

	CapFTName string `json:"cap_ft_name"`
	EIRFTName string `json:"eir_ft_name"`
	PLFName   string `json:"plf_name"`
}

func NewCoilCoolingDXTwoSpeed(m *Model, name string) *CoilCoolingDXTwoSpeed {
	c := &CoilCoolingDXTwoSpeed{
		Object:            m.newObject("Coil:Cooling:DX:TwoSpeed", name),
		RatedHighSpeedCOP: 3.0,
		RatedLowSpeedCOP:  3.0,
	}
	m.add(c)
	return c
}

func (c *CoilCoolingDXTwoSpeed) SetCurves(capFT, eirFT *CurveBiquadratic, plf *CurveQuadratic) {
	c.CapFT, c.EIRFT, c.PLF = capFT, eirFT, plf
	c.CapFTName, c.EIRFTName, c.PLFName = capFT.Name, eirFT.Name, plf.Name
}

type CoilHeatingDXSingleSpeed struct {
	Object
	RatedCOP             float64  `json:"rated_cop"`
	RatedCapacityW       *float64 `json:"rated_capacity_w"`
	MinOATCompressorC    float64  `json:"min_oat_compressor_c"`
	DefrostStrategy      string   `json:"defrost_strategy"`
	CrankcaseHeaterW     float64  `json:"crankcase_heater_w"`

	CapFT *CurveBiquadratic `json:"-"`
	EIRFT *CurveBiquadratic `json:"-"`
	PLF   *CurveQuadratic   `json:"-"`

	CapFTName string `json:"cap_ft_name"`
	EIRFTName string `json:"eir_ft_name"`
	PLFName   string `json:"plf_name"`
}

func NewCoilHeatingDXSingleSpeed(m *Model, name string) *CoilHeatingDXSingleSpeed {
	c := &CoilHeatingDXSingleSpeed{
		Object:            m.newObject("Coil:Heating:DX:SingleSpeed", name),
		RatedCOP:          3.3,
		MinOATCompressorC: -8.0,
		DefrostStrategy:   "ReverseCycle",
		CrankcaseHeaterW:  50.0,
	}
	m.add(c)
	return c
}

func (c *CoilHeatingDXSingleSpeed) SetCurves(capFT, eirFT *CurveBiquadratic, plf *CurveQuadratic) {
	c.CapFT, c.EIRFT, c.PLF = capFT, eirFT, plf
	c.CapFTName, c.EIRFTName, c.PLFName = capFT.Name, eirFT.Name, plf.Name
}

type CoilHeatingWaterToAirHeatPump struct {
	Object
	RatedCOP      float64 `json:"rated_cop"`
	PlantLoopName string  `json:"plant_loop_name"`
}

func NewCoilHeatingWaterToAirHeatPump(m *Model, name string, loop *PlantLoop) *CoilHeatingWaterToAirHeatPump {
	c := &CoilHeatingWaterToAirHeatPump{
		Object:   m.newObject("Coil:Heating:WaterToAirHeatPump:EquationFit", name),
		RatedCOP: 4.2,
	}
	if loop != nil {
		c.PlantLoopName = loop.Name
		loop.AddDemandComponent(c)
	}
	m.add(c)
	return c
}

type CoilCoolingWaterToAirHeatPump struct {
	Object
	RatedCOP      float64 `json:"rated_cop"`
	PlantLoopName string  `json:"plant_loop_name"`
}

func NewCoilCoolingWaterToAirHeatPump(m *Model, name string, loop *PlantLoop) *CoilCoolingWaterToAirHeatPump {
	c := &CoilCoolingWaterToAirHeatPump{
		Object:   m.newObject("Coil:Cooling:WaterToAirHeatPump:EquationFit", name),
		RatedCOP: 3.4,
	}
	if loop != nil {
		c.PlantLoopName = loop.Name
		loop.AddDemandComponent(c)
	}
	m.add(c)
	return c
}

// Terminals.

type TerminalVAVReheat struct {
	Object
	ZoneName            string  `json:"zone_name"`
	MinimumFlowFraction float64 `json:"minimum_flow_fraction"`
	MaxReheatAirTempC   float64 `json:"max_reheat_air_temp_c"`
	ReheatCoil          ModelObject `json:"-"`
	ReheatCoilName      string  `json:"reheat_coil_name"`
}

func NewTerminalVAVReheat(m *Model, name string, reheatCoil ModelObject) *TerminalVAVReheat {
	t := &TerminalVAVReheat{
		Object:              m.newObject("AirTerminal:SingleDuct:VAV:Reheat", name),
		MinimumFlowFraction: 0.3,
		MaxReheatAirTempC:   43.3,
	}
	if reheatCoil != nil {
		t.ReheatCoil = reheatCoil
		t.ReheatCoilName = reheatCoil.ObjectName()
	}
	m.add(t)
	return t
}

type TerminalVAVNoReheat struct {
	Object
	ZoneName            string  `json:"zone_name"`
	MinimumFlowFraction float64 `json:"minimum_flow_fraction"`
}

func NewTerminalVAVNoReheat(m *Model, name string) *TerminalVAVNoReheat {
	t := &TerminalVAVNoReheat{
		Object:              m.newObject("AirTerminal:SingleDuct:VAV:NoReheat", name),
		MinimumFlowFraction: 0.3,
	}
	m.add(t)
	return t
}

type TerminalParallelFanPoweredBox struct {
	Object
	ZoneName              string  `json:"zone_name"`
	SecondaryFlowFraction float64 `json:"secondary_flow_fraction"`
	Fan                   *FanConstantVolume `json:"-"`
	FanName               string  `json:"fan_name"`
	ReheatCoil            ModelObject `json:"-"`
	ReheatCoilName        string  `json:"reheat_coil_name"`
}

func NewTerminalParallelFanPoweredBox(m *Model, name string, fan *FanConstantVolume, reheatCoil ModelObject) *TerminalParallelFanPoweredBox {
	t := &TerminalParallelFanPoweredBox{
		Object:                m.newObject("AirTerminal:SingleDuct:ParallelPIU:Reheat", name),
		SecondaryFlowFraction: 0.5,
	}
	if fan != nil {
		t.Fan = fan
		t.FanName = fan.Name
	}
	if reheatCoil != nil {
		t.ReheatCoil = reheatCoil
		t.ReheatCoilName = reheatCoil.ObjectName()
	}
	m.add(t)
	return t
}

type TerminalConstantVolume struct {
	Object
	ZoneName string `json:"zone_name"`
}

func NewTerminalConstantVolume(m *Model, name string) *TerminalConstantVolume {
	t := &TerminalConstantVolume{Object: m.newObject("AirTerminal:SingleDuct:ConstantVolume:NoReheat", name)}
	m.add(t)
	return t
}
