package stack

import (
	"github.com/pkg/errors"
	"webstack/internal/aws/autoscaling"
	"webstack/internal/aws/elb"
	"webstack/internal/connectors"
)

// TeardownPlan removes the fleet and the load balancer only. The network, subnets, security
// groups, bastion and database created by Provision stay and have to be removed by hand.
func TeardownPlan(clients *connectors.Clients, cfg Config) Plan {
	return Plan{
		{
			Name: "delete-auto-scaling-group",
			Run: func(Outputs) (Outputs, error) {
				// the launch configuration can't be deleted while the group still references it
				if err := autoscaling.DeleteAutoScalingGroup(clients.ASG, cfg.AutoScalingGroupName); err != nil {
					return nil, err
				}
				return nil, autoscaling.DeleteLaunchConfiguration(clients.ASG, cfg.LaunchConfigurationName)
			},
		},
		{
			Name: "delete-load-balancer",
			Run: func(Outputs) (Outputs, error) {
				return nil, elb.DeleteLoadBalancer(clients.ELB, cfg.LoadBalancerName)
			},
		},
	}
}

func Teardown(clients *connectors.Clients, cfg Config) error {
	if err := cfg.ValidateTeardown(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	_, err := TeardownPlan(clients, cfg).Execute()
	return err
}
