package domain

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Settings are the shared game preferences of one player.
type Settings struct {
	Theme             Theme `json:"theme" yaml:"theme"`
	DefaultLevelIndex int   `json:"defaultLevelIndex" yaml:"defaultLevelIndex"`
	TimerEnabled      bool  `json:"timerEnabled" yaml:"timerEnabled"`
	FlagModeOnStart   bool  `json:"flagModeOnStart" yaml:"flagModeOnStart"`
	VibrationEnabled  bool  `json:"vibrationEnabled" yaml:"vibrationEnabled"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:             ThemeDark,
		DefaultLevelIndex: 1,
		TimerEnabled:      true,
		FlagModeOnStart:   false,
		VibrationEnabled:  true,
	}
}
