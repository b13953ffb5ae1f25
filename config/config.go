package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	ModeTraining   = "training"
	ModeProduction = "production"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		LogFile  string `envconfig:"LOG_FILE"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"  default:"vietravel"`
		Mode     string `envconfig:"MODE"      default:"training"`
		BasePath string `envconfig:"BASE_PATH" default:"/api"`
		APIURL   string `envconfig:"API_URL"`
		Timezone string `envconfig:"TIMEZONE"  default:"Asia/Ho_Chi_Minh"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"10"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
			// TrustProxy keys clients on X-Forwarded-For / X-Real-IP instead of the peer address.
			TrustProxy    bool `envconfig:"TRUST_PROXY"`
		} `envconfig:"RATE_LIMITER"`
		Admin struct {
			Username     string `envconfig:"USERNAME"      default:"admin"`
			Password     string `envconfig:"PASSWORD"      default:"password123"`
			PasswordHash string `envconfig:"PASSWORD_HASH"`
		} `envconfig:"ADMIN"`
	} `envconfig:"APP"`

	Booking struct {
		CodePrefix          string  `envconfig:"CODE_PREFIX"          default:"VT"`
		UniqueCodes         bool    `envconfig:"UNIQUE_CODES"         default:"true"`
		ChildRate           float64 `envconfig:"CHILD_RATE"           default:"0.7"`
		TaxRate             float64 `envconfig:"TAX_RATE"             default:"0.1"`
		ConfirmationMessage string  `envconfig:"CONFIRMATION_MESSAGE" default:"Đặt tour thành công! Chúng tôi sẽ liên hệ với bạn trong vòng 24 giờ."`
	} `envconfig:"BOOKING"`

	Cache struct {
		Redis struct {
			Enable  bool `envconfig:"ENABLE"`
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
	} `envconfig:"JWT"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			BookingCreated string `envconfig:"BOOKING_CREATED" default:"booking.created"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// IsProduction reports whether the hardened operating mode is active.
func (c *Config) IsProduction() bool {
	return c.App.Mode == ModeProduction
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if conf.App.Mode != ModeTraining && conf.App.Mode != ModeProduction {
			log.Warn().Str("mode", conf.App.Mode).Msg("Unknown app mode, falling back to training")
			conf.App.Mode = ModeTraining
		}

		initialized = true

		log.Info().Str("mode", conf.App.Mode).Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
