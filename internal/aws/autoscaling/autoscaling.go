package autoscaling

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/autoscaling/autoscalingiface"
	"github.com/rs/zerolog/log"
)

type LaunchConfigurationParams struct {
	ImageId         string
	KeyName         string
	InstanceType    string
	SecurityGroupId string
}

type GroupParams struct {
	LaunchConfigurationName string
	MinSize                 int64
	MaxSize                 int64
	AvailabilityZones       []string
	LoadBalancerNames       []string
}

func CreateLaunchConfiguration(svc autoscalingiface.AutoScalingAPI, name string, params LaunchConfigurationParams) error {
	_, err := svc.CreateLaunchConfiguration(&autoscaling.CreateLaunchConfigurationInput{
		LaunchConfigurationName: aws.String(name),
		ImageId:                 aws.String(params.ImageId),
		KeyName:                 aws.String(params.KeyName),
		SecurityGroups:          []*string{aws.String(params.SecurityGroupId)},
		InstanceType:            aws.String(params.InstanceType),
		InstanceMonitoring: &autoscaling.InstanceMonitoring{
			Enabled: aws.Bool(false),
		},
		EbsOptimized: aws.Bool(false),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("LaunchConfiguration: \"%s\" was created successfully!", name)
	return nil
}

func CreateAutoScalingGroup(svc autoscalingiface.AutoScalingAPI, autoScalingGroupName string, params GroupParams, tags []*autoscaling.Tag) error {
	_, err := svc.CreateAutoScalingGroup(&autoscaling.CreateAutoScalingGroupInput{
		AutoScalingGroupName:    aws.String(autoScalingGroupName),
		LaunchConfigurationName: aws.String(params.LaunchConfigurationName),
		MinSize:                 aws.Int64(params.MinSize),
		MaxSize:                 aws.Int64(params.MaxSize),
		AvailabilityZones:       aws.StringSlice(params.AvailabilityZones),
		LoadBalancerNames:       aws.StringSlice(params.LoadBalancerNames),
		Tags:                    tags,
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("AutoScalingGroup: \"%s\" was created successfully!", autoScalingGroupName)
	return nil
}

// DeleteAutoScalingGroup force deletes the group, terminating its member instances.
func DeleteAutoScalingGroup(svc autoscalingiface.AutoScalingAPI, autoScalingGroupName string) error {
	_, err := svc.DeleteAutoScalingGroup(&autoscaling.DeleteAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(autoScalingGroupName),
		ForceDelete:          aws.Bool(true),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("scaling group %s deleted", autoScalingGroupName)
	return nil
}

func DeleteLaunchConfiguration(svc autoscalingiface.AutoScalingAPI, name string) error {
	_, err := svc.DeleteLaunchConfiguration(&autoscaling.DeleteLaunchConfigurationInput{
		LaunchConfigurationName: aws.String(name),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("launch configuration %s deleted", name)
	return nil
}
