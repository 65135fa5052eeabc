// config/config.go
package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

type AdminConfig struct {
	RegistrationCode string `mapstructure:"registrationCode"`
	SeedEmail        string `mapstructure:"seedEmail"`
	SeedPassword     string `mapstructure:"seedPassword"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	S3       S3Config       `mapstructure:"s3"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

// LoadConfig reads config.yaml from the given path and overrides values
// with environment variables. A missing config file is not an error; the
// environment alone is enough to run the server.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "3000")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "transport_user")
	viper.SetDefault("database.password", "transport_pass")
	viper.SetDefault("database.name", "transport_db")
	viper.SetDefault("jwt.secret", "swastik_transport_secret_key")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("uploads.dir", "./uploads")
	viper.SetDefault("admin.registrationCode", "SWASTIK2024")
	viper.SetDefault("admin.seedEmail", "admin@swastiktransport.com")
	viper.SetDefault("admin.seedPassword", "admin123")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.name", "DB_NAME")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("uploads.dir", "UPLOADS_DIR")
	viper.BindEnv("admin.registrationCode", "ADMIN_REGISTRATION_CODE")
	viper.BindEnv("admin.seedEmail", "ADMIN_SEED_EMAIL")
	viper.BindEnv("admin.seedPassword", "ADMIN_SEED_PASSWORD")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
