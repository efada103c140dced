package model

// Schedules here are the constant-value kind the builders stamp for setpoints
// and availability. Day-of-week rules belong to the engine and are never set
// by this code.

type ScheduleConstant struct {
	Object
	Value float64 `json:"value"`
}

func NewScheduleConstant(m *Model, name string, value float64) *ScheduleConstant {
	s := &ScheduleConstant{Object: m.newObject("Schedule:Constant", name), Value: value}
	m.add(s)
	return s
}

type ScheduleRuleset struct {
	Object
	DefaultValue float64 `json:"default_value"`
}

func NewScheduleRuleset(m *Model, name string, defaultValue float64) *ScheduleRuleset {
	s := &ScheduleRuleset{Object: m.newObject("Schedule:Ruleset", name), DefaultValue: defaultValue}
	m.add(s)
	return s
}
