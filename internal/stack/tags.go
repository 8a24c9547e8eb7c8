package stack

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/aws/aws-sdk-go/service/rds"
)

type Tags map[string]string

const (
	NameTagKey    = "Name"
	ManagedTagKey = "webstack.io/managed"
	RunIdTagKey   = "webstack.io/run_id"
	RegionTagKey  = "webstack.io/region"
)

func (t Tags) Update(tags Tags) Tags {
	for k, v := range tags {
		t[k] = v
	}
	return t
}

func (t Tags) Clone() Tags {
	newTags := Tags{}
	for k, v := range t {
		newTags[k] = v
	}
	return newTags
}

// Named returns a copy of t carrying the Name tag.
func (t Tags) Named(name string) Tags {
	return t.Clone().Update(Tags{NameTagKey: name})
}

func (t Tags) AsEc2() []*ec2.Tag {
	var ec2Tags []*ec2.Tag
	for key, value := range t {
		ec2Tags = append(ec2Tags, &ec2.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	return ec2Tags
}

func (t Tags) AsRds() []*rds.Tag {
	var rdsTags []*rds.Tag
	for key, value := range t {
		rdsTags = append(rdsTags, &rds.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	return rdsTags
}

func (t Tags) AsElb() []*elb.Tag {
	var elbTags []*elb.Tag
	for key, value := range t {
		elbTags = append(elbTags, &elb.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	return elbTags
}

// AsAsg tags are propagated to the fleet instances.
func (t Tags) AsAsg() []*autoscaling.Tag {
	var autoscalingTags []*autoscaling.Tag
	for key, value := range t {
		autoscalingTags = append(autoscalingTags, &autoscaling.Tag{
			Key:               aws.String(key),
			Value:             aws.String(value),
			PropagateAtLaunch: aws.Bool(true),
		})
	}
	return autoscalingTags
}

func GetCommonTags(runId, region string) Tags {
	return Tags{
		ManagedTagKey: "true",
		RunIdTagKey:   runId,
		RegionTagKey:  region,
	}
}
