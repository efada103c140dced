package model

// Auxiliary equipment: process loads, humidification, and refrigeration.

type ElectricLoad struct {
	Object
	ZoneName     string  `json:"zone_name"`
	DesignLevelW float64 `json:"design_level_w"`
	EndUse       string  `json:"end_use"`

	Schedule     *ScheduleRuleset `json:"-"`
	ScheduleName string           `json:"schedule_name"`
}

func NewElectricLoad(m *Model, name string) *ElectricLoad {
	e := &ElectricLoad{Object: m.newObject("ElectricEquipment", name)}
	m.add(e)
	return e
}

func (e *ElectricLoad) SetSchedule(s *ScheduleRuleset) {
	e.Schedule = s
	e.ScheduleName = s.Name
}

type HumidifierSteamElectric struct {
	Object
	AirLoopName  string   `json:"air_loop_name"`
	RatedPowerW  *float64 `json:"rated_power_w"`
	RatedFlowM3s *float64 `json:"rated_flow_m3s"`

	MinHumiditySchedule     *ScheduleRuleset `json:"-"`
	MinHumidityScheduleName string           `json:"min_humidity_schedule_name"`
}

func NewHumidifierSteamElectric(m *Model, name string) *HumidifierSteamElectric {
	h := &HumidifierSteamElectric{Object: m.newObject("Humidifier:Steam:Electric", name)}
	m.add(h)
	return h
}

type RefrigerationCase struct {
	Object
	ZoneName                  string  `json:"zone_name"`
	LengthM                   float64 `json:"length_m"`
	RatedCapacityWPerM        float64 `json:"rated_capacity_w_per_m"`
	OperatingTempC            float64 `json:"operating_temp_c"`
	EvaporatorTempC           float64 `json:"evaporator_temp_c"`
	FanPowerWPerM             float64 `json:"fan_power_w_per_m"`
	LightingPowerWPerM        float64 `json:"lighting_power_w_per_m"`
	AntiSweatHeaterPowerWPerM float64 `json:"anti_sweat_heater_power_w_per_m"`
}

func NewRefrigerationCase(m *Model, name string) *RefrigerationCase {
	c := &RefrigerationCase{
		Object:             m.newObject("Refrigeration:Case", name),
		RatedCapacityWPerM: 734.0,
		OperatingTempC:     2.0,
		EvaporatorTempC:    -4.0,
		FanPowerWPerM:      41.0,
		LightingPowerWPerM: 33.0,
	}
	m.add(c)
	return c
}

type RefrigerationCompressor struct {
	Object
	RatedPowerW float64 `json:"rated_power_w"`
}

func NewRefrigerationCompressor(m *Model, name string) *RefrigerationCompressor {
	c := &RefrigerationCompressor{Object: m.newObject("Refrigeration:Compressor", name)}
	m.add(c)
	return c
}

type RefrigerationCondenserAirCooled struct {
	Object
	RatedFanPowerW float64 `json:"rated_fan_power_w"`
	MinCondensingTempC float64 `json:"min_condensing_temp_c"`
}

func NewRefrigerationCondenserAirCooled(m *Model, name string) *RefrigerationCondenserAirCooled {
	c := &RefrigerationCondenserAirCooled{
		Object:             m.newObject("Refrigeration:Condenser:AirCooled", name),
		MinCondensingTempC: 10.0,
	}
	m.add(c)
	return c
}

type RefrigerationSystem struct {
	Object
	Refrigerant     string   `json:"refrigerant"`
	CaseNames       []string `json:"case_names"`
	CompressorNames []string `json:"compressor_names"`
	CondenserName   string   `json:"condenser_name"`

	Cases       []*RefrigerationCase       `json:"-"`
	Compressors []*RefrigerationCompressor `json:"-"`
	Condenser   *RefrigerationCondenserAirCooled `json:"-"`
}

func NewRefrigerationSystem(m *Model, name string) *RefrigerationSystem {
	s := &RefrigerationSystem{
		Object:      m.newObject("Refrigeration:System", name),
		Refrigerant: "R404a",
	}
	m.add(s)
	return s
}

func (s *RefrigerationSystem) AddCase(c *RefrigerationCase) {
	s.Cases = append(s.Cases, c)
	s.CaseNames = append(s.CaseNames, c.Name)
}

func (s *RefrigerationSystem) AddCompressor(c *RefrigerationCompressor) {
	s.Compressors = append(s.Compressors, c)
	s.CompressorNames = append(s.CompressorNames, c.Name)
}

func (s *RefrigerationSystem) SetCondenser(c *RefrigerationCondenserAirCooled) {
	s.Condenser = c
	s.CondenserName = c.Name
}
