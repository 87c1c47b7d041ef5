package kafkaconf

import (
	"strings"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttd2089/kvconf/config"
)

func readStore(t *testing.T, contents string) *config.Store {
	t.Helper()
	store, err := config.Read(strings.NewReader(contents), config.Options{})
	require.NoError(t, err)
	return store
}

func TestConfigMap(t *testing.T) {
	store := readStore(t, `
# consumer.properties
bootstrap.servers = localhost:9092
group.id = rate-limited
enable.auto.commit = false
`)

	cm, err := ConfigMap(store, nil)
	require.NoError(t, err)

	assert.Equal(t, kafka.ConfigMap{
		"bootstrap.servers":  "localhost:9092",
		"group.id":           "rate-limited",
		"enable.auto.commit": "false",
	}, cm)
}

func TestConfigMapOverrides(t *testing.T) {
	store := readStore(t, "bootstrap.servers=localhost:9092\nacks=1\n")

	cm, err := ConfigMap(store, config.StdMap{"acks": "all", "linger.ms": "5"})
	require.NoError(t, err)

	assert.Equal(t, kafka.ConfigMap{
		"bootstrap.servers": "localhost:9092",
		"acks":              "all",
	}, cm)
}

func TestParseClient(t *testing.T) {

	t.Run("reads well known properties", func(t *testing.T) {
		store := readStore(t, "bootstrap.servers=a:9092,b:9092\nclient.id=kvconf\n")

		client, err := ParseClient(store)
		assert.NoError(t, err)
		assert.Equal(t, Client{BootstrapServers: "a:9092,b:9092", ClientID: "kvconf"}, client)
	})

	t.Run("requires bootstrap.servers", func(t *testing.T) {
		store := readStore(t, "client.id=kvconf\n")

		_, err := ParseClient(store)
		assert.ErrorIs(t, err, config.ErrKeyNotFound)
	})
}

func TestCheck(t *testing.T) {

	t.Run("accepts a valid producer config", func(t *testing.T) {
		store := readStore(t, "bootstrap.servers=localhost:9092\nacks=all\n")
		assert.NoError(t, Check(store, RoleProducer, nil))
	})

	t.Run("rejects unknown properties", func(t *testing.T) {
		store := readStore(t, "bootstrap.servers=localhost:9092\nno.such.property=1\n")
		assert.Error(t, Check(store, RoleProducer, nil))
	})

	t.Run("rejects a consumer without group.id", func(t *testing.T) {
		store := readStore(t, "bootstrap.servers=localhost:9092\n")
		assert.Error(t, Check(store, RoleConsumer, nil))
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		store := readStore(t, "bootstrap.servers=localhost:9092\n")
		assert.Error(t, Check(store, Role("admin"), nil))
	})
}
