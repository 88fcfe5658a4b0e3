package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Data DataConfig
	Log  LogConfig
	Run  RunConfig
}

// DataConfig locates the collaborator-supplied CSV tables.
type DataConfig struct {
	CoursesFile string
	RoomsFile   string
	GridFile    string
	ExportDir   string
	Delimiter   string
}

type LogConfig struct {
	Level  string
	Format string
}

// RunConfig enumerates what a full regeneration covers, in processing
// order.
type RunConfig struct {
	Branches  []string
	Semesters []int
	Sections  []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Data = DataConfig{
		CoursesFile: v.GetString("COURSES_FILE"),
		RoomsFile:   v.GetString("ROOMS_FILE"),
		GridFile:    v.GetString("GRID_FILE"),
		ExportDir:   v.GetString("EXPORT_DIR"),
		Delimiter:   v.GetString("CSV_DELIMITER"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Run = RunConfig{
		Branches:  splitAndTrim(v.GetString("BRANCHES")),
		Semesters: v.GetIntSlice("SEMESTERS"),
		Sections:  splitAndTrim(v.GetString("SECTIONS")),
	}

	return cfg, nil
}

// DelimiterRune returns the configured CSV delimiter, defaulting to comma.
func (d DataConfig) DelimiterRune() rune {
	if d.Delimiter == "" {
		return ','
	}
	return rune(d.Delimiter[0])
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3001)
	v.SetDefault("COURSES_FILE", "./res/courses.csv")
	v.SetDefault("ROOMS_FILE", "./res/rooms.csv")
	v.SetDefault("GRID_FILE", "")
	v.SetDefault("EXPORT_DIR", "./out")
	v.SetDefault("CSV_DELIMITER", ",")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("BRANCHES", "CSE,DSAI,ECE")
	v.SetDefault("SEMESTERS", []int{1, 2, 3, 4, 5, 6})
	v.SetDefault("SECTIONS", "A,B")
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
