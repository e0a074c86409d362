package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (local; default), TEST, QA, PROD
	Build    string
	AppName  string
	WorkDir  string

	Server struct {
		Host string
		Port string
	}

	// flat JSON-file storage & uploads
	DataDir    string
	UploadsDir string
	PublicDir  string

	// timetable definition; empty means the embedded default
	TimetableFile string

	DefaultFromEmail mail.Address
	AdminEmail       mail.Address
	SendgridApiKey   string
	RollbarToken     string
}

// NewConfig loads configuration from the environment (and an optional
// config/.env.<env> file) with DEV defaults, and materializes it into a
// Config passed explicitly to the components that need it.
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "ShakSite")
	v.SetDefault("host", "")
	v.SetDefault("port", "8000")
	v.SetDefault("dataDir", "data")
	v.SetDefault("uploadsDir", "uploads")
	v.SetDefault("publicDir", "public")
	v.SetDefault("timetableFile", "")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("adminEmail", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "")

	conf := &Config{WorkDir: Getwd()}

	conf.Env = os.Getenv("ENV")
	switch conf.Env {
	case "":
		conf.Env = "DEV"
	case "TEST":
		conf.TestMode = true
	}
	v.SetEnvPrefix(conf.Env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(conf.WorkDir, "config", ".env."+strings.ToLower(conf.Env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf.Debug = v.GetBool("debug")
	conf.AppName = v.GetString("appName")
	conf.Build = v.GetString("build")
	conf.Server.Host = v.GetString("host")
	conf.Server.Port = v.GetString("port")
	conf.DataDir = absDir(conf.WorkDir, v.GetString("dataDir"))
	conf.UploadsDir = absDir(conf.WorkDir, v.GetString("uploadsDir"))
	conf.PublicDir = absDir(conf.WorkDir, v.GetString("publicDir"))
	conf.TimetableFile = v.GetString("timetableFile")
	conf.DefaultFromEmail = mail.Address{Name: conf.AppName, Address: v.GetString("defaultFromEmail")}
	if admin := v.GetString("adminEmail"); admin != "" {
		conf.AdminEmail = mail.Address{Address: admin}
	}
	conf.SendgridApiKey = v.GetString("sendgridApiKey")
	conf.RollbarToken = v.GetString("rollbarToken")

	return conf
}

func (conf *Config) ServerAddr() string {
	return conf.Server.Host + ":" + conf.Server.Port
}

func absDir(workDir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(workDir, dir)
}
