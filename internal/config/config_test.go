package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8004, cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "urbancart", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("CATALOG_HTTP_PORT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_CustomMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.prod:27017/?replicaSet=rs0")
	t.Setenv("MONGO_DB", "catalog")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "mongodb://db.prod:27017/?replicaSet=rs0", cfg.MongoURI)
	assert.Equal(t, "catalog", cfg.MongoDB)
}

func TestLoad_MultipleKafkaBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}
