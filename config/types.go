package config

// InputConfig contains input decoding configuration
type InputConfig struct {
	Encoding string `yaml:"encoding" validate:"omitempty"`
}

// OutputConfig contains output rendering configuration
type OutputConfig struct {
	Color string `yaml:"color" validate:"omitempty,oneof=auto on off"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// TransducerConfig contains the markers recognised in route dumps.
// A nil DropPrefixes takes the defaults; an explicit empty list keeps every line.
type TransducerConfig struct {
	DropPrefixes      []string `yaml:"dropPrefixes" validate:"omitempty,dive,required"`
	HeadlineSeparator string   `yaml:"headlineSeparator"`
	PlanKeyword       string   `yaml:"planKeyword" validate:"omitempty,max=32"`
	PlanEndName       string   `yaml:"planEndName" validate:"omitempty,max=32"`
	DepartureMarker   string   `yaml:"departureMarker"`
	ArrivalMarker     string   `yaml:"arrivalMarker"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
	Transducer TransducerConfig `yaml:"transducer"`
}
