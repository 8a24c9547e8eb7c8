package instance

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog/log"
)

type Params struct {
	ImageId         string
	InstanceType    string
	KeyName         string
	SubnetId        string
	SecurityGroupId string
}

// RunPublicInstance launches a single instance with a public ip, used as ssh jump host.
func RunPublicInstance(svc ec2iface.EC2API, params Params, tags []*ec2.Tag) (instanceId string, err error) {
	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(params.ImageId),
		MinCount:     aws.Int64(1),
		MaxCount:     aws.Int64(1),
		KeyName:      aws.String(params.KeyName),
		InstanceType: aws.String(params.InstanceType),
		Monitoring: &ec2.RunInstancesMonitoringEnabled{
			Enabled: aws.Bool(false),
		},
		NetworkInterfaces: []*ec2.InstanceNetworkInterfaceSpecification{
			{
				DeviceIndex:              aws.Int64(0),
				SubnetId:                 aws.String(params.SubnetId),
				Groups:                   []*string{aws.String(params.SecurityGroupId)},
				AssociatePublicIpAddress: aws.Bool(true),
			},
		},
		EbsOptimized: aws.Bool(false),
	}
	if len(tags) > 0 {
		input.TagSpecifications = []*ec2.TagSpecification{
			{
				ResourceType: aws.String(ec2.ResourceTypeInstance),
				Tags:         tags,
			},
		}
	}

	reservation, err := svc.RunInstances(input)
	if err != nil {
		return
	}
	instanceId = *reservation.Instances[0].InstanceId
	log.Debug().Msgf("instance %s was launched into subnet %s", instanceId, params.SubnetId)
	return
}

func TerminateInstances(svc ec2iface.EC2API, instanceIds []string) error {
	_, err := svc.TerminateInstances(&ec2.TerminateInstancesInput{
		InstanceIds: aws.StringSlice(instanceIds),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("terminated instances %v", instanceIds)
	return nil
}

func DeregisterImage(svc ec2iface.EC2API, imageId string) error {
	_, err := svc.DeregisterImage(&ec2.DeregisterImageInput{
		ImageId: aws.String(imageId),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("image %s was deregistered", imageId)
	return nil
}

func DeleteSnapshot(svc ec2iface.EC2API, snapshotId string) error {
	_, err := svc.DeleteSnapshot(&ec2.DeleteSnapshotInput{
		SnapshotId: aws.String(snapshotId),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("snapshot %s was deleted", snapshotId)
	return nil
}
