package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// MySQL configuration (submission archive)
	MysqlDbName   string `mapstructure:"mysql_db_name"`
	MysqlHost     string `mapstructure:"mysql_host"`
	MysqlPort     int    `mapstructure:"mysql_port"`
	MysqlUsername string `mapstructure:"mysql_username"`
	MysqlPassword string `mapstructure:"mysql_password"`

	// Model artifact configuration
	ModelScalerPath     string `mapstructure:"model_scaler_path"`
	ModelClassifierPath string `mapstructure:"model_classifier_path"`
}
