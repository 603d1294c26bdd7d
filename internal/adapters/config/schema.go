package config

// Tldrfile represents the structure of the tldr.yaml configuration file.
// Pointer fields distinguish "not set" from a zero value.
type Tldrfile struct {
	Version        string           `yaml:"version"`
	Root           string           `yaml:"root"`
	CacheEnabled   *bool            `yaml:"cacheEnabled"`
	Verbose        *bool            `yaml:"verbose"`
	ReturnMetadata *bool            `yaml:"returnMetadata"`
	CacheDir       string           `yaml:"cacheDir"`
	AssetsDir      string           `yaml:"assetsDir"`
	Base           string           `yaml:"base"`
	Defaults       *ImageOptionsDTO `yaml:"defaults"`
	Converter      []string         `yaml:"converter"`
}

// ImageOptionsDTO represents the default image options in the configuration.
type ImageOptionsDTO struct {
	Format      *string  `yaml:"format"`
	Page        *string  `yaml:"page"`
	Frame       *string  `yaml:"frame"`
	Scale       *float64 `yaml:"scale"`
	Padding     *float64 `yaml:"padding"`
	Dark        *bool    `yaml:"dark"`
	Transparent *bool    `yaml:"transparent"`
	StripStyle  *bool    `yaml:"stripStyle"`
}
