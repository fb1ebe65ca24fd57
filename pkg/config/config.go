package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// AppName names the configuration and cache directories.
const AppName = "gfret"

// none disables an optional element in the configuration file.
const none = "none"

// Config holds the rendering preferences.
type Config struct {
	Units          Units
	Border         float64
	LineWeight     float64
	FretlineColor  Color
	FretboardColor Color

	// CenterlineColor is nil when no centerline is drawn.
	CenterlineColor *Color

	// Font is nil when the specification text is omitted.
	Font *Font
}

// Default returns metric units, a 10 unit border, 1.0 line weight, white
// frets on a black board, a blue centerline and "Sans Regular 12" text.
func Default() Config {
	blue := Blue
	font := DefaultFont()
	return Config{
		Units:           Metric,
		Border:          10,
		LineWeight:      1,
		FretlineColor:   White,
		FretboardColor:  Black,
		CenterlineColor: &blue,
		Font:            &font,
	}
}

// Validate rejects negative borders and non-positive line weights.
func (c Config) Validate() error {
	if err := ferrors.ValidateNonNegative("border", c.Border); err != nil {
		return err
	}
	if err := ferrors.ValidatePositive("line weight", c.LineWeight); err != nil {
		return err
	}
	return nil
}

// document is the on-disk form. Absent keys keep their defaults.
type document struct {
	Units           *Units   `toml:"units"`
	Border          *float64 `toml:"border"`
	LineWeight      *float64 `toml:"line_weight"`
	FretlineColor   *Color   `toml:"fretline_color"`
	FretboardColor  *Color   `toml:"fretboard_color"`
	CenterlineColor *string  `toml:"centerline_color"`
	Font            *string  `toml:"font"`
}

// Parse decodes a TOML configuration on top of [Default].
func Parse(data []byte) (Config, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		if ferrors.GetCode(err) != "" {
			return Config{}, err
		}
		return Config{}, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "parse config")
	}

	cfg := Default()
	if doc.Units != nil {
		cfg.Units = *doc.Units
	}
	if doc.Border != nil {
		cfg.Border = *doc.Border
	}
	if doc.LineWeight != nil {
		cfg.LineWeight = *doc.LineWeight
	}
	if doc.FretlineColor != nil {
		cfg.FretlineColor = *doc.FretlineColor
	}
	if doc.FretboardColor != nil {
		cfg.FretboardColor = *doc.FretboardColor
	}
	if doc.CenterlineColor != nil {
		if *doc.CenterlineColor == none {
			cfg.CenterlineColor = nil
		} else {
			c, err := ParseColor(*doc.CenterlineColor)
			if err != nil {
				return Config{}, err
			}
			cfg.CenterlineColor = &c
		}
	}
	if doc.Font != nil {
		if *doc.Font == none {
			cfg.Font = nil
		} else {
			f, err := ParseFont(*doc.Font)
			if err != nil {
				return Config{}, err
			}
			cfg.Font = &f
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	centerline, font := none, none
	if c.CenterlineColor != nil {
		centerline = c.CenterlineColor.String()
	}
	if c.Font != nil {
		font = c.Font.String()
	}
	doc := document{
		Units:           &c.Units,
		Border:          &c.Border,
		LineWeight:      &c.LineWeight,
		FretlineColor:   &c.FretlineColor,
		FretboardColor:  &c.FretboardColor,
		CenterlineColor: &centerline,
		Font:            &font,
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// Load reads the configuration at path. A missing file yields [Default].
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Save writes c to path, creating parent directories as needed.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Dir returns the configuration directory using XDG standard (~/.config/gfret/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the path of config.toml inside [Dir].
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
