package config

import "sort"

// Presets are named interaction feels layered over the defaults.
var Presets = map[string]*Config{
	"snappy": {
		ZoomDurationMs: 150, Easing: "quad-out",
		Zeta: 8.0, Threshold: 4.0,
		ZoomStep: 0.5, PanStep: 12.0,
		FPS: 60, ChartHeight: DefaultChartHeight,
	},
	"floaty": {
		ZoomDurationMs: 600, Easing: "cubic-in-out",
		Zeta: 1.5, Threshold: 1.0,
		ZoomStep: 0.25, PanStep: 6.0,
		FPS: 60, ChartHeight: DefaultChartHeight,
	},
	"glacial": {
		ZoomDurationMs: 1200, Easing: "quint-in-out",
		Zeta: 0.8, Threshold: 0.5,
		ZoomStep: 0.1, PanStep: 4.0,
		FPS: 30, ChartHeight: DefaultChartHeight,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
