package config

var Presets = map[string]*Config{
	"still": {
		Width: 10, Height: 10, Dt: 0.016, Duration: 10.0,
		Rate: 15.0, Init: "zero", Gain: DefaultGain,
	},
	"spike": {
		Width: 10, Height: 10, Dt: 0.016, Duration: 10.0,
		Rate: 15.0, Init: "spike",
		Spike: SpikeConfig{X: 4, Y: 4, VX: 20, VY: 20},
		Gain:  DefaultGain,
	},
	"blob": {
		Width: 10, Height: 10, Dt: 0.016, Duration: 10.0,
		Rate: 15.0, Init: "spike",
		Spike: SpikeConfig{X: 4, Y: 4, Density: 20.0},
		Gain:  DefaultGain,
	},
	"storm": {
		Width: 10, Height: 10, Dt: 0.016, Duration: 20.0,
		Rate: 15.0, Init: "random",
		Random: RandomConfig{MinSpeed: 0.5, MaxSpeed: 10.0},
		Gain:   DefaultGain,
	},
	"syrup": {
		Width: 10, Height: 10, Dt: 0.016, Duration: 20.0,
		Rate: 60.0, Init: "random",
		Random: RandomConfig{MinSpeed: 0.5, MaxSpeed: 4.0},
		Gain:   DefaultGain,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
