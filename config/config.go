package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host  string `yaml:"host" json:"host"`
	Port  int    `yaml:"port" json:"port"`
	Debug bool   `yaml:"debug" json:"debug"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type JobsConfig struct {
	// LowStockWatch enables the periodic out-of-stock inventory report job.
	LowStockWatch bool   `yaml:"low_stock_watch" json:"low_stock_watch"`
	LowStockCron  string `yaml:"low_stock_cron" json:"low_stock_cron"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system" json:"system"`
	Web      WebConfig  `yaml:"web" json:"web"`
	Database DBConfig   `yaml:"database" json:"database"`
	Logger   LogConfig  `yaml:"logger" json:"logger"`
	Jobs     JobsConfig `yaml:"jobs" json:"jobs"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "RepairTrack",
		Location: "Asia/Shanghai",
		Workdir:  "/var/repairtrack",
		Debug:    true,
	},
	Web: WebConfig{
		Host:  "0.0.0.0",
		Port:  2022,
		Debug: true,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "repairtrack",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/repairtrack/repairtrack.log",
	},
	Jobs: JobsConfig{
		LowStockWatch: false,
		LowStockCron:  "@every 1h",
	},
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads configuration from the given YAML file, falling back to
// defaults, and applies REPAIRTRACK_* environment overrides last.
func LoadConfig(cfile string) *AppConfig {
	// config priority: ENV > yaml > default
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("REPAIRTRACK_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("REPAIRTRACK_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("REPAIRTRACK_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("REPAIRTRACK_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("REPAIRTRACK_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvBoolValue("REPAIRTRACK_WEB_DEBUG", func(v bool) { cfg.Web.Debug = v })

	setEnvValue("REPAIRTRACK_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("REPAIRTRACK_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("REPAIRTRACK_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("REPAIRTRACK_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("REPAIRTRACK_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("REPAIRTRACK_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("REPAIRTRACK_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("REPAIRTRACK_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("REPAIRTRACK_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })
	setEnvValue("REPAIRTRACK_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })

	setEnvBoolValue("REPAIRTRACK_JOBS_LOW_STOCK_WATCH", func(v bool) { cfg.Jobs.LowStockWatch = v })
	setEnvValue("REPAIRTRACK_JOBS_LOW_STOCK_CRON", func(v string) { cfg.Jobs.LowStockCron = v })

	return cfg
}
