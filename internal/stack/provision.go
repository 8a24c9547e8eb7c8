package stack

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"strings"
	"webstack/internal/aws/autoscaling"
	"webstack/internal/aws/elb"
	"webstack/internal/aws/instance"
	"webstack/internal/aws/network"
	"webstack/internal/aws/rds"
	"webstack/internal/aws/securitygroup"
	"webstack/internal/connectors"
)

const (
	VpcId                  = "vpc_id"
	PublicSubnetAId        = "public_subnet_a_id"
	PublicSubnetBId        = "public_subnet_b_id"
	PrivateSubnetAId       = "private_subnet_a_id"
	PrivateSubnetBId       = "private_subnet_b_id"
	BastionGroupId         = "bastion_sg_id"
	BastionInstanceId      = "bastion_instance_id"
	WebserverGroupId       = "webserver_sg_id"
	DatabaseGroupId        = "database_sg_id"
	DBSubnetGroupName      = "db_subnet_group_name"
	DBInstanceArn          = "db_instance_arn"
	LoadBalancerName       = "load_balancer_name"
	LoadBalancerDNSName    = "load_balancer_dns_name"
	LaunchConfigurationRef = "launch_configuration_name"
	AutoScalingGroupRef    = "auto_scaling_group_name"
)

const (
	bastionGroupDescription   = "security group for jump server"
	webserverGroupDescription = "security group for web server/app server"
	databaseGroupDescription  = "security group for database server to connect to app server"
	dbSubnetGroupDescription  = "subnet group for the web application database"

	sshPort   = 22
	httpPort  = 80
	mysqlPort = 3306
)

// Provision brings up the whole reference architecture in one forward pass.
// There is no rollback: on failure the resources created so far are left in place and
// the returned outputs list them.
func Provision(clients *connectors.Clients, cfg Config) (Outputs, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	runId := uuid.New().String()
	log.Debug().Msgf("provisioning run %s in %s", runId, cfg.Region)
	return ProvisionPlan(clients, cfg, GetCommonTags(runId, cfg.Region)).Execute()
}

func subnetStep(clients *connectors.Clients, tags Tags, name, cidr, zone, produces string) Step {
	return Step{
		Name:     name,
		Consumes: []string{VpcId},
		Produces: []string{produces},
		Run: func(in Outputs) (Outputs, error) {
			subnetId, err := network.CreateSubnet(clients.EC2, in[VpcId], cidr, zone, tags.Named(strings.TrimPrefix(name, "create-")).AsEc2())
			return Outputs{produces: subnetId}, err
		},
	}
}

func groupStep(clients *connectors.Clients, tags Tags, stepName, groupName, description, produces string) Step {
	return Step{
		Name:     stepName,
		Consumes: []string{VpcId},
		Produces: []string{produces},
		Run: func(in Outputs) (Outputs, error) {
			groupId, err := securitygroup.CreateSecurityGroup(clients.EC2, groupName, description, in[VpcId], tags.Named(groupName).AsEc2())
			return Outputs{produces: groupId}, err
		},
	}
}

func cidrIngressStep(clients *connectors.Clients, name, group string, port int64) Step {
	return Step{
		Name:     name,
		Consumes: []string{group},
		Run: func(in Outputs) (Outputs, error) {
			return nil, securitygroup.AuthorizeIngressFromCidr(clients.EC2, in[group], securitygroup.ProtocolTcp, AnyCidr, port, port)
		},
	}
}

func groupIngressStep(clients *connectors.Clients, name, group, sourceGroup string, port int64) Step {
	return Step{
		Name:     name,
		Consumes: []string{group, sourceGroup, VpcId},
		Run: func(in Outputs) (Outputs, error) {
			return nil, securitygroup.AuthorizeIngressFromGroup(clients.EC2, in[group], securitygroup.ProtocolTcp, port, port, in[sourceGroup], in[VpcId])
		},
	}
}

// ProvisionPlan lists the provisioning steps in their fixed order.
func ProvisionPlan(clients *connectors.Clients, cfg Config, tags Tags) Plan {
	plan := Plan{
		{
			Name:     "create-vpc",
			Produces: []string{VpcId},
			Run: func(in Outputs) (Outputs, error) {
				vpcId, err := network.CreateVpc(clients.EC2, cfg.VpcCidr, tags.Named("webstack-vpc").AsEc2())
				return Outputs{VpcId: vpcId}, err
			},
		},
		subnetStep(clients, tags, "create-public-subnet-a", cfg.Subnets.PublicA, cfg.ZoneA, PublicSubnetAId),
		subnetStep(clients, tags, "create-public-subnet-b", cfg.Subnets.PublicB, cfg.ZoneB, PublicSubnetBId),
		subnetStep(clients, tags, "create-private-subnet-a", cfg.Subnets.PrivateA, cfg.ZoneA, PrivateSubnetAId),
		subnetStep(clients, tags, "create-private-subnet-b", cfg.Subnets.PrivateB, cfg.ZoneB, PrivateSubnetBId),

		groupStep(clients, tags, "create-bastion-security-group", cfg.SecurityGroups.Bastion, bastionGroupDescription, BastionGroupId),
		cidrIngressStep(clients, "allow-ssh-to-bastion", BastionGroupId, sshPort),
		{
			Name:     "launch-bastion",
			Consumes: []string{PublicSubnetAId, BastionGroupId},
			Produces: []string{BastionInstanceId},
			Run: func(in Outputs) (Outputs, error) {
				instanceId, err := instance.RunPublicInstance(clients.EC2, instance.Params{
					ImageId:         cfg.BastionImageId,
					InstanceType:    cfg.InstanceType,
					KeyName:         cfg.KeyPair,
					SubnetId:        in[PublicSubnetAId],
					SecurityGroupId: in[BastionGroupId],
				}, tags.Named("bastion").AsEc2())
				return Outputs{BastionInstanceId: instanceId}, err
			},
		},

		groupStep(clients, tags, "create-webserver-security-group", cfg.SecurityGroups.Webserver, webserverGroupDescription, WebserverGroupId),
		cidrIngressStep(clients, "allow-http-to-webserver", WebserverGroupId, httpPort),
		groupIngressStep(clients, "allow-ssh-from-bastion-to-webserver", WebserverGroupId, BastionGroupId, sshPort),

		groupStep(clients, tags, "create-database-security-group", cfg.SecurityGroups.Database, databaseGroupDescription, DatabaseGroupId),
		groupIngressStep(clients, "allow-mysql-from-webserver-to-database", DatabaseGroupId, WebserverGroupId, mysqlPort),

		{
			Name:     "create-db-subnet-group",
			Consumes: []string{PrivateSubnetAId, PrivateSubnetBId},
			Produces: []string{DBSubnetGroupName},
			Run: func(in Outputs) (Outputs, error) {
				_, err := rds.CreateDBSubnetGroup(clients.RDS, cfg.Database.SubnetGroupName, dbSubnetGroupDescription,
					[]string{in[PrivateSubnetAId], in[PrivateSubnetBId]}, tags.Named(cfg.Database.SubnetGroupName).AsRds())
				return Outputs{DBSubnetGroupName: cfg.Database.SubnetGroupName}, err
			},
		},
		{
			Name:     "create-db-instance",
			Consumes: []string{DBSubnetGroupName, DatabaseGroupId},
			Produces: []string{DBInstanceArn},
			Run: func(in Outputs) (Outputs, error) {
				arn, err := rds.CreateDBInstance(clients.RDS, rds.InstanceParams{
					DBName:           cfg.Database.Name,
					InstanceId:       cfg.Database.InstanceId,
					InstanceClass:    cfg.Database.InstanceClass,
					Engine:           cfg.Database.Engine,
					LicenseModel:     cfg.Database.LicenseModel,
					AllocatedStorage: cfg.Database.AllocatedStorage,
					MasterUsername:   cfg.Database.Username,
					MasterPassword:   cfg.Database.Password,
					SubnetGroupName:  in[DBSubnetGroupName],
					SecurityGroupId:  in[DatabaseGroupId],
				}, tags.Named(cfg.Database.InstanceId).AsRds())
				return Outputs{DBInstanceArn: arn}, err
			},
		},
	}

	if cfg.WaitForDatabase {
		plan = append(plan, Step{
			Name:     "wait-for-db-instance",
			Consumes: []string{DBInstanceArn},
			Run: func(in Outputs) (Outputs, error) {
				return nil, rds.WaitForDBInstanceAvailable(clients.RDS, cfg.Database.InstanceId)
			},
		})
	}

	plan = append(plan,
		Step{
			Name:     "create-load-balancer",
			Consumes: []string{PublicSubnetAId, PublicSubnetBId, WebserverGroupId},
			Produces: []string{LoadBalancerName, LoadBalancerDNSName},
			Run: func(in Outputs) (Outputs, error) {
				dnsName, err := elb.CreateLoadBalancer(clients.ELB, cfg.LoadBalancerName,
					[]elb.Listener{
						{Protocol: "HTTP", LoadBalancerPort: httpPort, InstanceProtocol: "HTTP", InstancePort: httpPort},
					},
					[]string{in[PublicSubnetAId], in[PublicSubnetBId]},
					[]string{in[WebserverGroupId]},
					tags.Named(cfg.LoadBalancerName).AsElb())
				return Outputs{LoadBalancerName: cfg.LoadBalancerName, LoadBalancerDNSName: dnsName}, err
			},
		},
		Step{
			Name:     "create-launch-configuration",
			Consumes: []string{WebserverGroupId},
			Produces: []string{LaunchConfigurationRef},
			Run: func(in Outputs) (Outputs, error) {
				err := autoscaling.CreateLaunchConfiguration(clients.ASG, cfg.LaunchConfigurationName, autoscaling.LaunchConfigurationParams{
					ImageId:         cfg.WebappImageId,
					KeyName:         cfg.KeyPair,
					InstanceType:    cfg.InstanceType,
					SecurityGroupId: in[WebserverGroupId],
				})
				return Outputs{LaunchConfigurationRef: cfg.LaunchConfigurationName}, err
			},
		},
		Step{
			Name:     "create-auto-scaling-group",
			Consumes: []string{LaunchConfigurationRef, LoadBalancerName},
			Produces: []string{AutoScalingGroupRef},
			Run: func(in Outputs) (Outputs, error) {
				err := autoscaling.CreateAutoScalingGroup(clients.ASG, cfg.AutoScalingGroupName, autoscaling.GroupParams{
					LaunchConfigurationName: in[LaunchConfigurationRef],
					MinSize:                 cfg.FleetMinSize,
					MaxSize:                 cfg.FleetMaxSize,
					AvailabilityZones:       []string{cfg.ZoneA, cfg.ZoneB},
					LoadBalancerNames:       []string{in[LoadBalancerName]},
				}, tags.Named(cfg.AutoScalingGroupName).AsAsg())
				return Outputs{AutoScalingGroupRef: cfg.AutoScalingGroupName}, err
			},
		},
	)
	return plan
}
