package stack

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"os"
	"webstack/internal/connectors"
	"webstack/internal/env"
	"webstack/internal/logging"
	stack2 "webstack/internal/stack"
)

var provisionParams struct {
	KeyPair         string
	WebappImageId   string
	DBPassword      string
	WaitForDatabase bool
}

var Provision = &cobra.Command{
	Use:   "provision [flags]",
	Short: "Create the web application stack",
	Long: dedent.Dedent(`
		Creates, in this order: vpc, two public and two private subnets, bastion security group
		and instance, webserver and database security groups, rds subnet group and instance,
		classic load balancer, launch configuration and auto scaling group.

		Nothing is rolled back on failure and nothing is checked for existence first: running
		provision twice creates a second vpc and then fails on the first name already taken.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := stack2.DefaultConfig().WithRegion(env.Config.Region)
		cfg.KeyPair = provisionParams.KeyPair
		cfg.WebappImageId = provisionParams.WebappImageId
		cfg.Database.Password = provisionParams.DBPassword
		cfg.WaitForDatabase = provisionParams.WaitForDatabase

		clients, err := connectors.NewAWSClients(cfg.Region)
		if err != nil {
			return err
		}

		logging.UserProgress("Provisioning web application stack in %s ...", cfg.Region)
		outputs, err := stack2.Provision(clients, cfg)
		if err != nil {
			if len(outputs) > 0 {
				logging.UserWarning("the following resources were created before the failure and were left in place:")
				stack2.RenderOutputs(os.Stdout, outputs)
			}
			logging.UserFailure("Provisioning failed!")
			return err
		}

		stack2.RenderOutputs(os.Stdout, outputs)
		if !cfg.WaitForDatabase {
			logging.UserWarning("database %s may still be starting", cfg.Database.InstanceId)
		}
		logging.UserSuccess("Provisioning finished successfully!")
		return nil
	},
	SilenceUsage: true,
}

func init() {
	defaults := stack2.DefaultConfig()
	Provision.Flags().StringVarP(&provisionParams.KeyPair, "key-pair", "k", stack2.DefaultKeyPair, "ec2 key pair name for bastion and fleet instances")
	Provision.Flags().StringVarP(&provisionParams.WebappImageId, "webapp-image", "i", "", "ami id of the baked web application image")
	Provision.Flags().StringVar(&provisionParams.DBPassword, "db-password", defaults.Database.Password, "database master password")
	Provision.Flags().BoolVarP(&provisionParams.WaitForDatabase, "wait-for-database", "w", false, "wait for the database to become available before creating the load balancer")
	_ = Provision.MarkFlagRequired("webapp-image")
}
