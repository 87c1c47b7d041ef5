package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttd2089/kvconf/config"
	"github.com/ttd2089/kvconf/internal/kafkaconf"
)

// newKafkaCmd creates the "kafka" command.
func newKafkaCmd(provider *AppProvider) *cobra.Command {
	var role string
	var useEnv bool

	cmd := &cobra.Command{
		Use:   "kafka <file>",
		Short: "Validate a Kafka client properties file",
		Long: `Load a librdkafka client properties file and create a producer or
consumer from it without connecting to any broker. librdkafka rejects
unknown properties and invalid values at this point.

With --env, environment variables override the file: a property such as
bootstrap.servers is read from BOOTSTRAP__SERVERS when that is set.

Examples:
  kvconf kafka producer.properties
  kvconf kafka consumer.properties --role consumer --env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			store, err := app.Load(args[0])
			if err != nil {
				return err
			}

			var overrides config.Map
			lookup := config.Map(store)
			if useEnv {
				overrides = config.EnvMap{}
				lookup = config.Chain{overrides, store}
			}

			client, err := kafkaconf.ParseClient(lookup)
			if err != nil {
				return err
			}

			if err := kafkaconf.Check(store, kafkaconf.Role(role), overrides); err != nil {
				return err
			}

			app.Logger.Info().
				Str("path", store.Path()).
				Str("role", role).
				Str("bootstrap_servers", client.BootstrapServers).
				Msg("kafka config valid")

			fmt.Fprintf(app.Out, "ok: %s config for %s\n", role, client.BootstrapServers)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(kafkaconf.RoleProducer), "Client role (producer, consumer)")
	cmd.Flags().BoolVar(&useEnv, "env", false, "Let environment variables override file properties")

	return cmd
}
