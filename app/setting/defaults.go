package setting

// Default templates for each category. Loaders fall back to these and top up
// missing keys, so shipped defaults stay sparse: users grow the style files
// as they meet new vehicles and compounds.

// DefaultConfig returns the global configuration template.
func DefaultConfig() map[string]any {
	return map[string]any{
		"application": map[string]any{
			"last_preset":       "default",
			"show_at_startup":   true,
			"minimize_to_tray":  true,
			"remember_position": true,
		},
		"units": map[string]any{
			"distance":    "meter",
			"fuel":        "liter",
			"temperature": "celsius",
		},
		"primary_preset": map[string]any{
			"LMU": "",
			"RF2": "",
		},
	}
}

// DefaultSetting returns the per-preset template used for new presets.
func DefaultSetting() map[string]any {
	return map[string]any{
		"overlay": map[string]any{
			"fix_position": false,
			"auto_hide":    true,
			"framerate":    60,
		},
		"brake_temperature": map[string]any{
			"enable":          true,
			"update_interval": 100,
			"heatmap_name":    "brake_default",
		},
		"tyre_temperature": map[string]any{
			"enable":          true,
			"update_interval": 100,
			"heatmap_name":    "tyre_default",
		},
		"fuel": map[string]any{
			"enable":            true,
			"update_interval":   200,
			"low_fuel_warning":  true,
			"warning_threshold": 2.0,
		},
		"delta_best": map[string]any{
			"enable":          true,
			"update_interval": 40,
		},
	}
}

// DefaultClasses returns the vehicle class style template.
func DefaultClasses() map[string]any {
	return map[string]any{
		"Hypercar": map[string]any{"alias": "HYP", "color": "#FF4400"},
		"LMP2":     map[string]any{"alias": "LMP2", "color": "#3388FF"},
		"GTE":      map[string]any{"alias": "GTE", "color": "#22AA44"},
		"GT3":      map[string]any{"alias": "GT3", "color": "#AA66CC"},
	}
}

// DefaultHeatmap returns the named temperature gradient template.
func DefaultHeatmap() map[string]any {
	return map[string]any{
		"tyre_default": map[string]any{
			"-273": "#4444FF",
			"40":   "#44CCFF",
			"75":   "#44FF44",
			"100":  "#FFFF44",
			"125":  "#FF4444",
		},
		"brake_default": map[string]any{
			"-273": "#4444FF",
			"100":  "#44FF44",
			"300":  "#FFFF44",
			"600":  "#FF4444",
		},
	}
}

// DefaultBrands returns the vehicle brand mapping template.
func DefaultBrands() map[string]any {
	return map[string]any{}
}

// DefaultBrakes returns the per-class brake style template.
func DefaultBrakes() map[string]any {
	return map[string]any{}
}

// DefaultCompounds returns the tyre compound style template.
func DefaultCompounds() map[string]any {
	return map[string]any{
		"Soft":   map[string]any{"symbol": "S", "heatmap": "tyre_default"},
		"Medium": map[string]any{"symbol": "M", "heatmap": "tyre_default"},
		"Hard":   map[string]any{"symbol": "H", "heatmap": "tyre_default"},
	}
}

func defaultsFor(cat Category) map[string]any {
	switch cat {
	case Config:
		return DefaultConfig()
	case Setting:
		return DefaultSetting()
	case Classes:
		return DefaultClasses()
	case Heatmap:
		return DefaultHeatmap()
	case Brands:
		return DefaultBrands()
	case Brakes:
		return DefaultBrakes()
	case Compounds:
		return DefaultCompounds()
	}
	return map[string]any{}
}
