package stack

import (
	"github.com/pkg/errors"
	"net"
	"strings"
	"webstack/internal/env"
)

type SecurityGroupNames struct {
	Bastion   string
	Webserver string
	Database  string
}

type DatabaseConfig struct {
	Name             string
	InstanceId       string
	Username         string
	Password         string
	SubnetGroupName  string
	InstanceClass    string
	Engine           string
	LicenseModel     string
	AllocatedStorage int64
}

type SubnetCidrs struct {
	PublicA  string
	PublicB  string
	PrivateA string
	PrivateB string
}

// Config is built once at startup and handed to the workflows by value.
type Config struct {
	Region  string
	KeyPair string
	ZoneA   string
	ZoneB   string

	VpcCidr string
	Subnets SubnetCidrs

	AutoScalingGroupName    string
	LaunchConfigurationName string
	LoadBalancerName        string

	BastionImageId string
	WebappImageId  string
	InstanceType   string

	FleetMinSize int64
	FleetMaxSize int64

	Database       DatabaseConfig
	SecurityGroups SecurityGroupNames

	WaitForDatabase bool
}

const (
	DefaultKeyPair = "bilal-dubizzle"
	AnyCidr        = "0.0.0.0/0"
)

func DefaultConfig() Config {
	return Config{
		Region:  env.DefaultRegion,
		KeyPair: DefaultKeyPair,
		ZoneA:   "eu-west-1a",
		ZoneB:   "eu-west-1b",
		VpcCidr: "10.0.0.0/16",
		Subnets: SubnetCidrs{
			PublicA:  "10.0.1.0/24",
			PublicB:  "10.0.2.0/24",
			PrivateA: "10.0.3.0/24",
			PrivateB: "10.0.4.0/24",
		},
		AutoScalingGroupName:    "bilal-asg",
		LaunchConfigurationName: "bilal-lc",
		LoadBalancerName:        "bilal-lb",
		BastionImageId:          "ami-f9dd458a",
		InstanceType:            "t2.micro",
		FleetMinSize:            1,
		FleetMaxSize:            2,
		Database: DatabaseConfig{
			Name:             "bilal_database",
			InstanceId:       "bilal-db-instance",
			Username:         "db_bilal",
			Password:         "db_bilal",
			SubnetGroupName:  "bilal-db-subnet-group",
			InstanceClass:    "db.t2.micro",
			Engine:           "MySQL",
			LicenseModel:     "general-public-license",
			AllocatedStorage: 5,
		},
		SecurityGroups: SecurityGroupNames{
			Bastion:   "bilal-bastion-sg",
			Webserver: "bilal-webserver-sg",
			Database:  "bilal-dbserver-sg",
		},
	}
}

// WithRegion returns a copy of c targeting region. Zones follow the region unless it is the
// one the defaults were written for.
func (c Config) WithRegion(region string) Config {
	if region == "" || region == c.Region {
		return c
	}
	c.Region = region
	c.ZoneA = region + "a"
	c.ZoneB = region + "b"
	return c
}

func requireValues(values map[string]string) error {
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			return errors.Errorf("configuration value %s is empty", name)
		}
	}
	return nil
}

// Validate checks every value consumed by Provision.
func (c Config) Validate() error {
	err := requireValues(map[string]string{
		"region":                     c.Region,
		"key pair":                   c.KeyPair,
		"zone a":                     c.ZoneA,
		"zone b":                     c.ZoneB,
		"auto scaling group name":    c.AutoScalingGroupName,
		"launch configuration name":  c.LaunchConfigurationName,
		"load balancer name":         c.LoadBalancerName,
		"bastion image id":           c.BastionImageId,
		"webapp image id":            c.WebappImageId,
		"instance type":              c.InstanceType,
		"database name":              c.Database.Name,
		"database instance id":       c.Database.InstanceId,
		"database username":          c.Database.Username,
		"database password":          c.Database.Password,
		"database subnet group name": c.Database.SubnetGroupName,
		"database instance class":    c.Database.InstanceClass,
		"database engine":            c.Database.Engine,
		"database license model":     c.Database.LicenseModel,
		"bastion security group":     c.SecurityGroups.Bastion,
		"webserver security group":   c.SecurityGroups.Webserver,
		"database security group":    c.SecurityGroups.Database,
	})
	if err != nil {
		return err
	}

	_, vpcNet, err := net.ParseCIDR(c.VpcCidr)
	if err != nil {
		return errors.Wrapf(err, "invalid vpc cidr %q", c.VpcCidr)
	}
	for name, cidr := range map[string]string{
		"public subnet a":  c.Subnets.PublicA,
		"public subnet b":  c.Subnets.PublicB,
		"private subnet a": c.Subnets.PrivateA,
		"private subnet b": c.Subnets.PrivateB,
	} {
		ip, _, err := net.ParseCIDR(cidr)
		if err != nil {
			return errors.Wrapf(err, "invalid %s cidr %q", name, cidr)
		}
		if !vpcNet.Contains(ip) {
			return errors.Errorf("%s cidr %s is outside vpc cidr %s", name, cidr, c.VpcCidr)
		}
	}

	if c.Database.AllocatedStorage <= 0 {
		return errors.Errorf("database storage must be positive, got %d", c.Database.AllocatedStorage)
	}
	if c.FleetMinSize < 1 || c.FleetMinSize > c.FleetMaxSize {
		return errors.Errorf("invalid fleet size min=%d max=%d", c.FleetMinSize, c.FleetMaxSize)
	}
	return nil
}

// ValidateTeardown checks only the names Teardown deletes by.
func (c Config) ValidateTeardown() error {
	return requireValues(map[string]string{
		"region":                     c.Region,
		"auto scaling group name":    c.AutoScalingGroupName,
		"launch configuration name":  c.LaunchConfigurationName,
		"load balancer name":         c.LoadBalancerName,
	})
}
