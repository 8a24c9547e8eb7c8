package connectors

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/autoscaling/autoscalingiface"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/aws/aws-sdk-go/service/elb/elbiface"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/rds/rdsiface"
	"github.com/pkg/errors"
)

// Clients holds the service clients used by the workflows. Fields are interfaces so
// tests can substitute in-memory implementations.
type Clients struct {
	EC2 ec2iface.EC2API
	RDS rdsiface.RDSAPI
	ELB elbiface.ELBAPI
	ASG autoscalingiface.AutoScalingAPI
}

func NewAWSClients(region string) (*Clients, error) {
	sess, err := newSession(region)
	if err != nil {
		return nil, errors.Wrapf(err, "failed creating aws session for region %s", region)
	}
	return &Clients{
		EC2: ec2.New(sess),
		RDS: rds.New(sess),
		ELB: elb.New(sess),
		ASG: autoscaling.New(sess),
	}, nil
}

func newSession(region string) (*session.Session, error) {
	config := aws.NewConfig()
	config = config.WithRegion(region)
	config = config.WithCredentialsChainVerboseErrors(true)

	opts := session.Options{
		Config:                  *config,
		SharedConfigState:       session.SharedConfigEnable,
		AssumeRoleTokenProvider: stscreds.StdinTokenProvider,
	}

	return session.NewSessionWithOptions(opts)
}
