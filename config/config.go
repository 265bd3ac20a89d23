package config

// Config file (global)
var Config JSONConfig

// JSONConfig structure based on config.json
type JSONConfig struct {
	Origin    string        `json:"origin"`
	Port      string        `json:"port"`
	Version   string        `json:"version"`
	EmailFrom string        `json:"emailFrom"`
	ResetURL  string        `json:"resetURL"`
	JWTSecret string        `json:"jwtSecret"`
	SMTP      SMTPConfig    `json:"smtp"`
	Redis     RedisConfig   `json:"redis"`
	Mongo     MongoConfig   `json:"mongo"`
	Scylla    ScyllaConfig  `json:"scylla"`
	MinIO     MinIOConfig   `json:"minIO"`
	SMS       SMSConfig     `json:"sms"`
	Payment   PaymentConfig `json:"payment"`
	Friends   FriendsConfig `json:"friends"`
}

// SMTPConfig structure based on smtp part of config.json
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// RedisConfig structure is the config for the redis connection
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// MongoConfig structure is the config for the document store connection
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// ScyllaConfig structure is the config for the chat log cluster
type ScyllaConfig struct {
	Hosts    []string `json:"hosts"`
	Keyspace string   `json:"keyspace"`
}

// MinIOConfig structure is the config for MinIO connection
type MinIOConfig struct {
	Endpoint  string `json:"endpoint"`
	User      string `json:"user"`
	Password  string `json:"password"`
	PublicURL string `json:"publicURL"`
}

// SMSConfig structure is the config for the sms gateway collaborator
type SMSConfig struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	From string `json:"from"`
}

// PaymentConfig structure is the config for the payment gateway collaborator
type PaymentConfig struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// FriendsConfig holds friends-list assembly toggles
type FriendsConfig struct {
	IncludeSelf bool `json:"includeSelf"`
}
