package metric

import (
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	// It is safe to use one client from multiple goroutines simultaneously.
	statsDClient = getDefaultClient()

	// by default full sampling
	samplingRate = 0.0

	appName     = ""
	initialized = false
	once        sync.Once
)

// Init initializes the statsd client with the telegraf address and global tags
// derived from the environment.
func Init() {
	if initialized {
		log.Debug().Msg("Metrics already initialized!")
		return
	}
	once.Do(func() {
		var err error
		samplingRate = viper.GetFloat64("APP_METRIC_SAMPLING_RATE")
		appName = viper.GetString("APP_NAME")
		telegrafAddress := getTelegrafAddress()
		globalTags := getGlobalTags()

		statsDClient, err = statsd.New(
			telegrafAddress,
			statsd.WithTags(globalTags),
		)
		if err != nil {
			// In local/dev environments Telegraf may not be running; log and
			// continue with the default client instead of crashing the service.
			log.Error().Err(err).Msg("StatsD client initialization failed, metrics will be unavailable")
			statsDClient = getDefaultClient()
			return
		}
		log.Info().Msgf("Metrics client initialized with telegraf address - %s, global tags - %v, and sampling rate - %f",
			telegrafAddress, globalTags, samplingRate)
		initialized = true
	})
}

func getDefaultClient() *statsd.Client {
	client, err := statsd.New("localhost:8125")
	if err != nil {
		client, _ = statsd.New("localhost:8125", statsd.WithoutTelemetry())
	}
	return client
}

func getGlobalTags() []string {
	env := viper.GetString("APP_ENV")
	if len(env) == 0 {
		log.Warn().Msg("APP_ENV is not set")
	}
	return []string{
		"env:" + env,
		"service:" + viper.GetString("APP_NAME"),
	}
}

func getTelegrafAddress() string {
	host := viper.GetString("TELEGRAF_HOST")
	port := viper.GetString("TELEGRAF_PORT")
	if len(host) == 0 {
		host = "localhost"
	}
	if len(port) == 0 {
		port = "8125"
	}
	return host + ":" + port
}

// Timing sends timing information for the given metric.
func Timing(name string, value time.Duration, tags []string) {
	err := statsDClient.Timing(name, value, tags, samplingRate)
	if err != nil {
		log.Warn().AnErr("Error occurred while doing statsd timing", err)
	}
}

// Count increases the metric counter by value.
func Count(name string, value int64, tags []string) {
	err := statsDClient.Count(name, value, tags, samplingRate)
	if err != nil {
		log.Warn().AnErr("Error occurred while doing statsd count", err)
	}
}

// Gauge sets the metric gauge to value.
func Gauge(name string, value float64, tags []string) {
	err := statsDClient.Gauge(name, value, tags, samplingRate)
	if err != nil {
		log.Warn().AnErr("Error occurred while doing statsd gauge", err)
	}
}
