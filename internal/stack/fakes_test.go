package stack

import (
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/autoscaling/autoscalingiface"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/aws/aws-sdk-go/service/elb/elbiface"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/rds/rdsiface"
	"webstack/internal/connectors"
)

type call struct {
	Op    string
	Input interface{}
}

// recorder is shared by all fake services so calls can be checked in global order.
// Calls to methods the fakes don't override panic on the nil embedded interface.
type recorder struct {
	calls   []call
	failOn  map[string]error
	counter int

	dbSubnetGroups map[string]bool
}

func newRecorder() *recorder {
	return &recorder{
		failOn:         map[string]error{},
		dbSubnetGroups: map[string]bool{},
	}
}

func (r *recorder) record(op string, input interface{}) error {
	r.calls = append(r.calls, call{Op: op, Input: input})
	return r.failOn[op]
}

func (r *recorder) id(prefix string) string {
	r.counter++
	return fmt.Sprintf("%s-%08d", prefix, r.counter)
}

func (r *recorder) ops() []string {
	var ops []string
	for _, c := range r.calls {
		ops = append(ops, c.Op)
	}
	return ops
}

func (r *recorder) inputs(op string) []interface{} {
	var inputs []interface{}
	for _, c := range r.calls {
		if c.Op == op {
			inputs = append(inputs, c.Input)
		}
	}
	return inputs
}

func (r *recorder) count(op string) int {
	return len(r.inputs(op))
}

type fakeEC2 struct {
	ec2iface.EC2API
	rec *recorder
}

func (f *fakeEC2) CreateVpc(input *ec2.CreateVpcInput) (*ec2.CreateVpcOutput, error) {
	if err := f.rec.record("ec2:CreateVpc", input); err != nil {
		return nil, err
	}
	return &ec2.CreateVpcOutput{Vpc: &ec2.Vpc{VpcId: aws.String(f.rec.id("vpc"))}}, nil
}

func (f *fakeEC2) CreateSubnet(input *ec2.CreateSubnetInput) (*ec2.CreateSubnetOutput, error) {
	if err := f.rec.record("ec2:CreateSubnet", input); err != nil {
		return nil, err
	}
	return &ec2.CreateSubnetOutput{Subnet: &ec2.Subnet{SubnetId: aws.String(f.rec.id("subnet"))}}, nil
}

func (f *fakeEC2) CreateSecurityGroup(input *ec2.CreateSecurityGroupInput) (*ec2.CreateSecurityGroupOutput, error) {
	if err := f.rec.record("ec2:CreateSecurityGroup", input); err != nil {
		return nil, err
	}
	return &ec2.CreateSecurityGroupOutput{GroupId: aws.String(f.rec.id("sg"))}, nil
}

func (f *fakeEC2) AuthorizeSecurityGroupIngress(input *ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	if err := f.rec.record("ec2:AuthorizeSecurityGroupIngress", input); err != nil {
		return nil, err
	}
	return &ec2.AuthorizeSecurityGroupIngressOutput{Return: aws.Bool(true)}, nil
}

func (f *fakeEC2) RunInstances(input *ec2.RunInstancesInput) (*ec2.Reservation, error) {
	if err := f.rec.record("ec2:RunInstances", input); err != nil {
		return nil, err
	}
	return &ec2.Reservation{Instances: []*ec2.Instance{{InstanceId: aws.String(f.rec.id("i"))}}}, nil
}

func (f *fakeEC2) TerminateInstances(input *ec2.TerminateInstancesInput) (*ec2.TerminateInstancesOutput, error) {
	if err := f.rec.record("ec2:TerminateInstances", input); err != nil {
		return nil, err
	}
	return &ec2.TerminateInstancesOutput{}, nil
}

func (f *fakeEC2) DeregisterImage(input *ec2.DeregisterImageInput) (*ec2.DeregisterImageOutput, error) {
	if err := f.rec.record("ec2:DeregisterImage", input); err != nil {
		return nil, err
	}
	return &ec2.DeregisterImageOutput{}, nil
}

func (f *fakeEC2) DeleteSnapshot(input *ec2.DeleteSnapshotInput) (*ec2.DeleteSnapshotOutput, error) {
	if err := f.rec.record("ec2:DeleteSnapshot", input); err != nil {
		return nil, err
	}
	return &ec2.DeleteSnapshotOutput{}, nil
}

type fakeRDS struct {
	rdsiface.RDSAPI
	rec *recorder
}

func (f *fakeRDS) CreateDBSubnetGroup(input *rds.CreateDBSubnetGroupInput) (*rds.CreateDBSubnetGroupOutput, error) {
	if err := f.rec.record("rds:CreateDBSubnetGroup", input); err != nil {
		return nil, err
	}
	name := aws.StringValue(input.DBSubnetGroupName)
	if f.rec.dbSubnetGroups[name] {
		return nil, awserr.New(rds.ErrCodeDBSubnetGroupAlreadyExistsFault, "DB Subnet Group '"+name+"' already exists", nil)
	}
	f.rec.dbSubnetGroups[name] = true
	return &rds.CreateDBSubnetGroupOutput{DBSubnetGroup: &rds.DBSubnetGroup{
		DBSubnetGroupName: input.DBSubnetGroupName,
		DBSubnetGroupArn:  aws.String("arn:aws:rds:eu-west-1:123456789012:subgrp:" + name),
	}}, nil
}

func (f *fakeRDS) CreateDBInstance(input *rds.CreateDBInstanceInput) (*rds.CreateDBInstanceOutput, error) {
	if err := f.rec.record("rds:CreateDBInstance", input); err != nil {
		return nil, err
	}
	return &rds.CreateDBInstanceOutput{DBInstance: &rds.DBInstance{
		DBInstanceIdentifier: input.DBInstanceIdentifier,
		DBInstanceArn:        aws.String("arn:aws:rds:eu-west-1:123456789012:db:" + aws.StringValue(input.DBInstanceIdentifier)),
	}}, nil
}

func (f *fakeRDS) WaitUntilDBInstanceAvailable(input *rds.DescribeDBInstancesInput) error {
	return f.rec.record("rds:WaitUntilDBInstanceAvailable", input)
}

type fakeELB struct {
	elbiface.ELBAPI
	rec *recorder
}

func (f *fakeELB) CreateLoadBalancer(input *elb.CreateLoadBalancerInput) (*elb.CreateLoadBalancerOutput, error) {
	if err := f.rec.record("elb:CreateLoadBalancer", input); err != nil {
		return nil, err
	}
	return &elb.CreateLoadBalancerOutput{
		DNSName: aws.String(aws.StringValue(input.LoadBalancerName) + "-1234.eu-west-1.elb.amazonaws.com"),
	}, nil
}

func (f *fakeELB) DeleteLoadBalancer(input *elb.DeleteLoadBalancerInput) (*elb.DeleteLoadBalancerOutput, error) {
	if err := f.rec.record("elb:DeleteLoadBalancer", input); err != nil {
		return nil, err
	}
	return &elb.DeleteLoadBalancerOutput{}, nil
}

type fakeASG struct {
	autoscalingiface.AutoScalingAPI
	rec *recorder
}

func (f *fakeASG) CreateLaunchConfiguration(input *autoscaling.CreateLaunchConfigurationInput) (*autoscaling.CreateLaunchConfigurationOutput, error) {
	if err := f.rec.record("autoscaling:CreateLaunchConfiguration", input); err != nil {
		return nil, err
	}
	return &autoscaling.CreateLaunchConfigurationOutput{}, nil
}

func (f *fakeASG) CreateAutoScalingGroup(input *autoscaling.CreateAutoScalingGroupInput) (*autoscaling.CreateAutoScalingGroupOutput, error) {
	if err := f.rec.record("autoscaling:CreateAutoScalingGroup", input); err != nil {
		return nil, err
	}
	return &autoscaling.CreateAutoScalingGroupOutput{}, nil
}

func (f *fakeASG) DeleteAutoScalingGroup(input *autoscaling.DeleteAutoScalingGroupInput) (*autoscaling.DeleteAutoScalingGroupOutput, error) {
	if err := f.rec.record("autoscaling:DeleteAutoScalingGroup", input); err != nil {
		return nil, err
	}
	return &autoscaling.DeleteAutoScalingGroupOutput{}, nil
}

func (f *fakeASG) DeleteLaunchConfiguration(input *autoscaling.DeleteLaunchConfigurationInput) (*autoscaling.DeleteLaunchConfigurationOutput, error) {
	if err := f.rec.record("autoscaling:DeleteLaunchConfiguration", input); err != nil {
		return nil, err
	}
	return &autoscaling.DeleteLaunchConfigurationOutput{}, nil
}

func newFakeClients(rec *recorder) *connectors.Clients {
	return &connectors.Clients{
		EC2: &fakeEC2{rec: rec},
		RDS: &fakeRDS{rec: rec},
		ELB: &fakeELB{rec: rec},
		ASG: &fakeASG{rec: rec},
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.WebappImageId = "ami-0webapp"
	return cfg
}
