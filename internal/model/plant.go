package model

// Fuel type strings accepted by the builders and the efficiency standards.
const (
	FuelNaturalGas  = "NaturalGas"
	FuelElectricity = "Electricity"
	FuelFuelOil     = "FuelOilNo2"
	FuelDistrict    = "DistrictHeating"
)

// SizingPlant carries the loop-level sizing inputs the engine reads.
type SizingPlant struct {
	LoopType            string  `json:"loop_type"` // Heating, Cooling, Condenser
	DesignLoopExitTempC float64 `json:"design_loop_exit_temp_c"`
	LoopDesignDeltaTC   float64 `json:"loop_design_delta_t_c"`
}

type PlantLoop struct {
	Object
	FluidType       string      `json:"fluid_type"`
	MinimumLoopTempC float64    `json:"minimum_loop_temp_c"`
	MaximumLoopTempC float64    `json:"maximum_loop_temp_c"`
	Sizing          SizingPlant `json:"sizing"`

	SupplyComponents []ModelObject `json:"-"`
	DemandComponents []ModelObject `json:"-"`
	SetpointManager  ModelObject   `json:"-"`
}

func NewPlantLoop(m *Model, name string) *PlantLoop {
	l := &PlantLoop{
		Object:    m.newObject("PlantLoop", name),
		FluidType: "Water",
	}
	m.add(l)
	return l
}

func (l *PlantLoop) AddSupplyComponent(c ModelObject) {
	l.SupplyComponents = append(l.SupplyComponents, c)
}

func (l *PlantLoop) AddDemandComponent(c ModelObject) {
	l.DemandComponents = append(l.DemandComponents, c)
}

func (l *PlantLoop) SupplyComponentNames() []string {
	names := make([]string, 0, len(l.SupplyComponents))
	for _, c := range l.SupplyComponents {
		names = append(names, c.ObjectName())
	}
	return names
}

// SupplyComponentsOfType filters the supply side by object type.
func (l *PlantLoop) SupplyComponentsOfType(objType string) []ModelObject {
	var out []ModelObject
	for _, c := range l.SupplyComponents {
		if c.ObjectType() == objType {
			out = append(out, c)
		}
	}
	return out
}

type PumpVariableSpeed struct {
	Object
	RatedHeadPa     float64  `json:"rated_head_pa"`
	RatedFlowM3s    *float64 `json:"rated_flow_m3s"`
	MotorEfficiency float64  `json:"motor_efficiency"`
	PumpEfficiency  float64  `json:"pump_efficiency"`
	ControlType     string   `json:"control_type"`

	// part load performance c1 + c2*plr + c3*plr^2 + c4*plr^3
	Coeff1 float64 `json:"coeff1"`
	Coeff2 float64 `json:"coeff2"`
	Coeff3 float64 `json:"coeff3"`
	Coeff4 float64 `json:"coeff4"`
}

func NewPumpVariableSpeed(m *Model, name string) *PumpVariableSpeed {
	p := &PumpVariableSpeed{
		Object:          m.newObject("Pump:VariableSpeed", name),
		MotorEfficiency: 0.9,
		PumpEfficiency:  0.78,
		ControlType:     "Intermittent",
	}
	m.add(p)
	return p
}

type PumpConstantSpeed struct {
	Object
	RatedHeadPa     float64  `json:"rated_head_pa"`
	RatedFlowM3s    *float64 `json:"rated_flow_m3s"`
	MotorEfficiency float64  `json:"motor_efficiency"`
	PumpEfficiency  float64  `json:"pump_efficiency"`
	ControlType     string   `json:"control_type"`
}

func NewPumpConstantSpeed(m *Model, name string) *PumpConstantSpeed {
	p := &PumpConstantSpeed{
		Object:          m.newObject("Pump:ConstantSpeed", name),
		MotorEfficiency: 0.9,
		PumpEfficiency:  0.78,
		ControlType:     "Intermittent",
	}
	m.add(p)
	return p
}

type BoilerHotWater struct {
	Object
	FuelType               string            `json:"fuel_type"`
	NominalCapacityW       *float64          `json:"nominal_capacity_w"`
	ThermalEfficiency      float64           `json:"thermal_efficiency"`
	DesignOutletTempC      float64           `json:"design_outlet_temp_c"`
	FlowMode               string            `json:"flow_mode"`
	EfficiencyCurve        *CurveBiquadratic `json:"-"`
	EfficiencyCurveName    string            `json:"efficiency_curve_name"`
	EfficiencyCurveVariable string           `json:"efficiency_curve_variable"`
}

func NewBoilerHotWater(m *Model, name string) *BoilerHotWater {
	b := &BoilerHotWater{
		Object:            m.newObject("Boiler:HotWater", name),
		FuelType:          FuelNaturalGas,
		ThermalEfficiency: 0.80,
		DesignOutletTempC: 82.2,
		FlowMode:          "LeavingSetpointModulated",
	}
	m.add(b)
	return b
}

func (b *BoilerHotWater) SetEfficiencyCurve(c *CurveBiquadratic) {
	b.EfficiencyCurve = c
	b.EfficiencyCurveName = c.Name
}

type ChillerElectricEIR struct {
	Object
	CompressorType     string   `json:"compressor_type"` // Reciprocating, Scroll, Screw, Centrifugal
	CondenserType      string   `json:"condenser_type"`  // WaterCooled, AirCooled
	ReferenceCapacityW *float64 `json:"reference_capacity_w"`
	ReferenceCOP       float64  `json:"reference_cop"`
	LeavingWaterTempC  float64  `json:"leaving_water_temp_c"`

	CapFT   *CurveBiquadratic `json:"-"`
	EIRFT   *CurveBiquadratic `json:"-"`
	EIRFPLR *CurveQuadratic   `json:"-"`

	CapFTName   string `json:"cap_ft_name"`
	EIRFTName   string `json:"eir_ft_name"`
	EIRFPLRName string `json:"eir_fplr_name"`
}

func NewChillerElectricEIR(m *Model, name string) *ChillerElectricEIR {
	c := &ChillerElectricEIR{
		Object:            m.newObject("Chiller:Electric:EIR", name),
		CompressorType:    "Screw",
		CondenserType:     "WaterCooled",
		ReferenceCOP:      5.5,
		LeavingWaterTempC: 6.7,
	}
	m.add(c)
	return c
}

func (c *ChillerElectricEIR) SetCurves(capFT, eirFT *CurveBiquadratic, eirFPLR *CurveQuadratic) {
	c.CapFT, c.EIRFT, c.EIRFPLR = capFT, eirFT, eirFPLR
	c.CapFTName, c.EIRFTName, c.EIRFPLRName = capFT.Name, eirFT.Name, eirFPLR.Name
}

type CoolingTowerVariableSpeed struct {
	Object
	DesignRangeC       float64  `json:"design_range_c"`
	DesignApproachC    float64  `json:"design_approach_c"`
	DesignWaterFlowM3s *float64 `json:"design_water_flow_m3s"`
	FanPowerW          *float64 `json:"fan_power_w"`
	MinimumSpeedFraction float64 `json:"minimum_speed_fraction"`
}

func NewCoolingTowerVariableSpeed(m *Model, name string) *CoolingTowerVariableSpeed {
	t := &CoolingTowerVariableSpeed{
		Object:               m.newObject("CoolingTower:VariableSpeed", name),
		DesignRangeC:         5.6,
		DesignApproachC:      3.9,
		MinimumSpeedFraction: 0.2,
	}
	m.add(t)
	return t
}

type CoolingTowerSingleSpeed struct {
	Object
	DesignWaterFlowM3s *float64 `json:"design_water_flow_m3s"`
	FanPowerW          *float64 `json:"fan_power_w"`
}

func NewCoolingTowerSingleSpeed(m *Model, name string) *CoolingTowerSingleSpeed {
	t := &CoolingTowerSingleSpeed{Object: m.newObject("CoolingTower:SingleSpeed", name)}
	m.add(t)
	return t
}

type EvaporativeFluidCoolerSingleSpeed struct {
	Object
	DesignWaterFlowM3s *float64 `json:"design_water_flow_m3s"`
	FanPowerW          *float64 `json:"fan_power_w"`
	PerformanceMethod  string   `json:"performance_method"`
}

func NewEvaporativeFluidCoolerSingleSpeed(m *Model, name string) *EvaporativeFluidCoolerSingleSpeed {
	f := &EvaporativeFluidCoolerSingleSpeed{
		Object:            m.newObject("EvaporativeFluidCooler:SingleSpeed", name),
		PerformanceMethod: "UFactorTimesAreaAndDesignWaterFlowRate",
	}
	m.add(f)
	return f
}

type DistrictHeating struct {
	Object
	NominalCapacityW *float64 `json:"nominal_capacity_w"`
}

func NewDistrictHeating(m *Model, name string) *DistrictHeating {
	d := &DistrictHeating{Object: m.newObject("DistrictHeating", name)}
	m.add(d)
	return d
}

type DistrictCooling struct {
	Object
	NominalCapacityW *float64 `json:"nominal_capacity_w"`
}

func NewDistrictCooling(m *Model, name string) *DistrictCooling {
	d := &DistrictCooling{Object: m.newObject("DistrictCooling", name)}
	m.add(d)
	return d
}

type WaterHeaterMixed struct {
	Object
	FuelType                     string   `json:"fuel_type"`
	TankVolumeM3                 *float64 `json:"tank_volume_m3"`
	HeaterCapacityW              *float64 `json:"heater_capacity_w"`
	ThermalEfficiency            float64  `json:"thermal_efficiency"`
	OffCycleLossCoefficientWPerK float64  `json:"off_cycle_loss_coefficient_w_per_k"`
	OnCycleLossCoefficientWPerK  float64  `json:"on_cycle_loss_coefficient_w_per_k"`
	AmbientTempC                 float64  `json:"ambient_temp_c"`

	SetpointSchedule     *ScheduleRuleset `json:"-"`
	SetpointScheduleName string           `json:"setpoint_schedule_name"`
}

func NewWaterHeaterMixed(m *Model, name string) *WaterHeaterMixed {
	w := &WaterHeaterMixed{
		Object:            m.newObject("WaterHeater:Mixed", name),
		FuelType:          FuelNaturalGas,
		ThermalEfficiency: 0.80,
		AmbientTempC:      22.0,
	}
	m.add(w)
	return w
}

func (w *WaterHeaterMixed) SetSetpointSchedule(s *ScheduleRuleset) {
	w.SetpointSchedule = s
	w.SetpointScheduleName = s.Name
}

// Setpoint managers.

type SetpointManagerScheduled struct {
	Object
	ControlVariable string           `json:"control_variable"`
	Schedule        *ScheduleRuleset `json:"-"`
	ScheduleName    string           `json:"schedule_name"`
}

func NewSetpointManagerScheduled(m *Model, name string, sched *ScheduleRuleset) *SetpointManagerScheduled {
	s := &SetpointManagerScheduled{
		Object:          m.newObject("SetpointManager:Scheduled", name),
		ControlVariable: "Temperature",
	}
	if sched != nil {
		s.Schedule = sched
		s.ScheduleName = sched.Name
	}
	m.add(s)
	return s
}

type SetpointManagerScheduledDualSetpoint struct {
	Object
	ControlVariable  string           `json:"control_variable"`
	HighSchedule     *ScheduleRuleset `json:"-"`
	HighScheduleName string           `json:"high_schedule_name"`
	LowSchedule      *ScheduleRuleset `json:"-"`
	LowScheduleName  string           `json:"low_schedule_name"`
}

func NewSetpointManagerScheduledDualSetpoint(m *Model, name string, high, low *ScheduleRuleset) *SetpointManagerScheduledDualSetpoint {
	s := &SetpointManagerScheduledDualSetpoint{
		Object:          m.newObject("SetpointManager:Scheduled:DualSetpoint", name),
		ControlVariable: "Temperature",
	}
	if high != nil {
		s.HighSchedule = high
		s.HighScheduleName = high.Name
	}
	if low != nil {
		s.LowSchedule = low
		s.LowScheduleName = low.Name
	}
	m.add(s)
	return s
}

type SetpointManagerOutdoorAirReset struct {
	Object
	SetpointAtOutdoorLowC  float64 `json:"setpoint_at_outdoor_low_c"`
	SetpointAtOutdoorHighC float64 `json:"setpoint_at_outdoor_high_c"`
	OutdoorLowC            float64 `json:"outdoor_low_c"`
	OutdoorHighC           float64 `json:"outdoor_high_c"`
}

func NewSetpointManagerOutdoorAirReset(m *Model, name string) *SetpointManagerOutdoorAirReset {
	s := &SetpointManagerOutdoorAirReset{Object: m.newObject("SetpointManager:OutdoorAirReset", name)}
	m.add(s)
	return s
}

type SetpointManagerFollowOutdoorAirTemperature struct {
	Object
	ReferenceTemperatureType string  `json:"reference_temperature_type"`
	OffsetC                  float64 `json:"offset_c"`
	MaximumSetpointC         float64 `json:"maximum_setpoint_c"`
	MinimumSetpointC         float64 `json:"minimum_setpoint_c"`
}

func NewSetpointManagerFollowOutdoorAirTemperature(m *Model, name string) *SetpointManagerFollowOutdoorAirTemperature {
	s := &SetpointManagerFollowOutdoorAirTemperature{
		Object:                   m.newObject("SetpointManager:FollowOutdoorAirTemperature", name),
		ReferenceTemperatureType: "OutdoorAirWetBulb",
	}
	m.add(s)
	return s
}

type SetpointManagerSingleZoneReheat struct {
	Object
	MinimumSupplyAirTempC float64 `json:"minimum_supply_air_temp_c"`
	MaximumSupplyAirTempC float64 `json:"maximum_supply_air_temp_c"`
	ControlZoneName       string  `json:"control_zone_name"`
}

func NewSetpointManagerSingleZoneReheat(m *Model, name string) *SetpointManagerSingleZoneReheat {
	s := &SetpointManagerSingleZoneReheat{Object: m.newObject("SetpointManager:SingleZone:Reheat", name)}
	m.add(s)
	return s
}
