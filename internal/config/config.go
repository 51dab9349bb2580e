// Package config resolves settings from flags, YLOX_* environment
// variables, an optional ylox.yaml and built-in defaults, in that order.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyAllowTrailing = "allow_trailing"
	KeyColor         = "color"
	KeyPrompt        = "prompt"
	KeyShowTokens    = "show_tokens"
	KeyShowAST       = "show_ast"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const envPrefix = "YLOX"

type Config struct {
	AllowTrailing bool
	Color         string
	Prompt        string
	ShowTokens    bool
	ShowAST       bool
}

// New returns a viper instance with defaults set. Config files are looked
// up in paths, or in the working directory and $HOME/.config/ylox when
// paths is empty.
func New(paths ...string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAllowTrailing, false)
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeyPrompt, "> ")
	v.SetDefault(KeyShowTokens, false)
	v.SetDefault(KeyShowAST, false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName("ylox")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = defaultPaths()
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	return v
}

func defaultPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ylox"))
	}
	return paths
}

// AddFlags registers one flag per key on flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.Bool("allow-trailing", false, "ignore tokens after the first complete expression")
	flags.String("color", ColorAuto, "color diagnostics: auto, always or never")
	flags.String("prompt", "> ", "REPL prompt")
	flags.Bool("show-tokens", false, "print tokens before running")
	flags.Bool("show-ast", false, "print the prefix tree before running")
}

// BindFlags binds the flags registered by AddFlags to their keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyAllowTrailing: "allow-trailing",
		KeyColor:         "color",
		KeyPrompt:        "prompt",
		KeyShowTokens:    "show-tokens",
		KeyShowAST:       "show-ast",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			return errors.Errorf("flag --%s not registered", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

// Load reads the config file if there is one. A missing file is fine, a
// malformed one is an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	cfg := &Config{
		AllowTrailing: v.GetBool(KeyAllowTrailing),
		Color:         v.GetString(KeyColor),
		Prompt:        v.GetString(KeyPrompt),
		ShowTokens:    v.GetBool(KeyShowTokens),
		ShowAST:       v.GetBool(KeyShowAST),
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, errors.Errorf("invalid %s %q: want %s, %s or %s", KeyColor, cfg.Color, ColorAuto, ColorAlways, ColorNever)
	}

	return cfg, nil
}

// Colored reports whether diagnostics should be colored when written to a
// stream that is or is not a terminal.
func (c *Config) Colored(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
