// Package kafkaconf turns librdkafka client properties files into Kafka client configuration.
package kafkaconf

import (
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/ttd2089/kvconf/config"
)

// Role is the kind of client a properties file configures.
type Role string

const (
	RoleProducer Role = "producer"
	RoleConsumer Role = "consumer"
)

// Client holds the properties kvconf reports on. Everything else is passed through to
// librdkafka untouched.
type Client struct {
	BootstrapServers string `config_key:"bootstrap.servers,required"`
	ClientID         string `config_key:"client.id"`
	GroupID          string `config_key:"group.id"`
}

// ParseClient reads the well known client properties from m.
func ParseClient(m config.Map) (Client, error) {
	return config.Parse[Client](m)
}

// ConfigMap copies every entry of s into a librdkafka configuration. When overrides is not
// nil, a value it holds for one of the keys in s replaces the value from the file.
func ConfigMap(s *config.Store, overrides config.Map) (kafka.ConfigMap, error) {
	s = s.WithOverrides(overrides)
	cm := kafka.ConfigMap{}
	for _, key := range s.Keys() {
		value, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		if err := cm.SetKey(key, value); err != nil {
			return nil, fmt.Errorf("set %q: %w", key, err)
		}
	}
	return cm, nil
}

// Check builds a client of the given role from s and closes it again. librdkafka rejects
// unknown properties, invalid values and, for consumers, a missing group.id when the client
// is created; no connection to the brokers is attempted.
func Check(s *config.Store, role Role, overrides config.Map) error {
	cm, err := ConfigMap(s, overrides)
	if err != nil {
		return err
	}

	switch role {
	case RoleProducer:
		p, err := kafka.NewProducer(&cm)
		if err != nil {
			return fmt.Errorf("create Kafka producer: %w", err)
		}
		p.Close()
	case RoleConsumer:
		c, err := kafka.NewConsumer(&cm)
		if err != nil {
			return fmt.Errorf("create Kafka consumer: %w", err)
		}
		if err := c.Close(); err != nil {
			return fmt.Errorf("close Kafka consumer: %w", err)
		}
	default:
		return fmt.Errorf("unknown client role %q", role)
	}
	return nil
}
