package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers               []string
	KafkaConsumerGroup         string
	KafkaPaymentConfirmedTopic string
	KafkaOrderStatusTopic      string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	DocgenBaseURL string

	GenerationTimeout   time.Duration
	GenerationWorkers   int
	GenerationQueueSize int
}
