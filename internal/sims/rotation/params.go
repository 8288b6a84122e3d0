package rotation

import (
	"fmt"
	"strconv"

	"rotca/internal/core"
)

// Parameters reports the configuration and the live state of the automaton.
func (s *Sim) Parameters() core.ParameterSnapshot {
	g := s.engine.Grid()
	center := g.Center()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", g.Width()),
				intParam("h", "Height", g.Height()),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name:    "Seeding",
			Summary: "applied on reset",
			Params: []core.Parameter{
				boolParam("circle", "Circular seed", s.cfg.Circular),
				intParam("radius", "Radius", s.cfg.Radius),
				floatParam("fill", "Fill", s.cfg.Fill),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.engine.Generations()),
				stringParam("phase", "Next phase", s.engine.Next().String()),
				intParam("alive", "Alive", g.Alive()),
				stringParam("center", "Center", fmt.Sprintf("%d,%d", center.Row, center.Col)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the seeding values adjustable from the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 2, Min: 0, HasMin: true},
		{Key: "fill", Label: "Fill", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer seeding value. It takes effect on the
// next Reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		if value < 0 {
			value = 0
		}
		s.cfg.Radius = value
		return true
	}
	return false
}

// SetFloatParameter updates a floating point seeding value, clamped to
// [0, 1]. It takes effect on the next Reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fill":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		s.cfg.Fill = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
