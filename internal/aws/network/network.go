package network

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog/log"
)

func tagSpecifications(resourceType string, tags []*ec2.Tag) []*ec2.TagSpecification {
	if len(tags) == 0 {
		return nil
	}
	return []*ec2.TagSpecification{
		{
			ResourceType: aws.String(resourceType),
			Tags:         tags,
		},
	}
}

func CreateVpc(svc ec2iface.EC2API, cidr string, tags []*ec2.Tag) (vpcId string, err error) {
	output, err := svc.CreateVpc(&ec2.CreateVpcInput{
		CidrBlock:         aws.String(cidr),
		InstanceTenancy:   aws.String(ec2.TenancyDefault),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeVpc, tags),
	})
	if err != nil {
		return
	}
	vpcId = *output.Vpc.VpcId
	log.Debug().Msgf("vpc %s (%s) was created successfully", vpcId, cidr)
	return
}

func CreateSubnet(svc ec2iface.EC2API, vpcId, cidr, availabilityZone string, tags []*ec2.Tag) (subnetId string, err error) {
	output, err := svc.CreateSubnet(&ec2.CreateSubnetInput{
		VpcId:             aws.String(vpcId),
		CidrBlock:         aws.String(cidr),
		AvailabilityZone:  aws.String(availabilityZone),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeSubnet, tags),
	})
	if err != nil {
		return
	}
	subnetId = *output.Subnet.SubnetId
	log.Debug().Msgf("subnet %s (%s, %s) was created successfully", subnetId, cidr, availabilityZone)
	return
}
