package stack

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"webstack/internal/connectors"
	"webstack/internal/env"
	"webstack/internal/logging"
	stack2 "webstack/internal/stack"
)

var dryRun bool

var Teardown = &cobra.Command{
	Use:   "teardown [flags]",
	Short: "Delete the auto scaling fleet and the load balancer",
	Long: dedent.Dedent(`
		Force deletes the auto scaling group (terminating its instances), then its launch
		configuration, then the load balancer.

		The vpc, subnets, security groups, bastion and database are NOT removed. Delete them
		manually before running provision again.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := stack2.DefaultConfig().WithRegion(env.Config.Region)

		if dryRun {
			logging.UserInfo("This is dry run, running teardown in %s will remove the following resources:", cfg.Region)
			logging.UserInfo("AutoScalingGroup:\n\t- %s", cfg.AutoScalingGroupName)
			logging.UserInfo("LaunchConfiguration:\n\t- %s", cfg.LaunchConfigurationName)
			logging.UserInfo("LoadBalancer:\n\t- %s", cfg.LoadBalancerName)
			return nil
		}

		clients, err := connectors.NewAWSClients(cfg.Region)
		if err != nil {
			return err
		}

		logging.UserProgress("Removing auto scaling group %s, launch configuration %s and load balancer %s ...",
			cfg.AutoScalingGroupName, cfg.LaunchConfigurationName, cfg.LoadBalancerName)
		err = stack2.Teardown(clients, cfg)
		if err != nil {
			logging.UserFailure("Teardown failed!")
			return err
		}
		logging.UserSuccess("Teardown finished successfully!")
		return nil
	},
	SilenceUsage: true,
}

func init() {
	Teardown.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "only print what would be deleted")
}
