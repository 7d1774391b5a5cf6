package config

var (
	appConfig AppConfig
)

type AppConfig struct {
	Configs        Configs
	DynamicConfigs DynamicConfigs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func (cfg *AppConfig) GetDynamicConfig() interface{} {
	return &cfg.DynamicConfigs
}

func GetAppConfig() *AppConfig {
	return &appConfig
}

type Configs struct {
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppPort               int     `mapstructure:"app_port"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`

	// model configuration
	ModelOnnxPath        string `mapstructure:"model_onnx_path"`
	OnnxRuntimeSharedLib string `mapstructure:"onnxruntime_shared_lib_path"`

	// telegraf configuration
	TelegrafHost string `mapstructure:"telegraf_host"`
	TelegrafPort string `mapstructure:"telegraf_port"`
}

type DynamicConfigs struct {
}
