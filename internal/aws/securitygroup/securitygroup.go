package securitygroup

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog/log"
)

const ProtocolTcp = "tcp"

func CreateSecurityGroup(svc ec2iface.EC2API, name, description, vpcId string, tags []*ec2.Tag) (groupId string, err error) {
	input := &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String(description),
		VpcId:       aws.String(vpcId),
	}
	if len(tags) > 0 {
		input.TagSpecifications = []*ec2.TagSpecification{
			{
				ResourceType: aws.String(ec2.ResourceTypeSecurityGroup),
				Tags:         tags,
			},
		}
	}
	output, err := svc.CreateSecurityGroup(input)
	if err != nil {
		return
	}
	groupId = *output.GroupId
	log.Debug().Msgf("security group %s (%s) was created successfully", name, groupId)
	return
}

// AuthorizeIngressFromCidr allows protocol traffic on [fromPort, toPort] from an ip range.
func AuthorizeIngressFromCidr(svc ec2iface.EC2API, groupId, protocol, cidr string, fromPort, toPort int64) error {
	_, err := svc.AuthorizeSecurityGroupIngress(&ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:    aws.String(groupId),
		IpProtocol: aws.String(protocol),
		FromPort:   aws.Int64(fromPort),
		ToPort:     aws.Int64(toPort),
		CidrIp:     aws.String(cidr),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("security group %s: allowed %s %d-%d from %s", groupId, protocol, fromPort, toPort, cidr)
	return nil
}

// AuthorizeIngressFromGroup allows protocol traffic on [fromPort, toPort] from members of another group.
func AuthorizeIngressFromGroup(svc ec2iface.EC2API, groupId, protocol string, fromPort, toPort int64, sourceGroupId, vpcId string) error {
	_, err := svc.AuthorizeSecurityGroupIngress(&ec2.AuthorizeSecurityGroupIngressInput{
		GroupId: aws.String(groupId),
		IpPermissions: []*ec2.IpPermission{
			{
				IpProtocol: aws.String(protocol),
				FromPort:   aws.Int64(fromPort),
				ToPort:     aws.Int64(toPort),
				UserIdGroupPairs: []*ec2.UserIdGroupPair{
					{
						GroupId: aws.String(sourceGroupId),
						VpcId:   aws.String(vpcId),
					},
				},
			},
		},
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("security group %s: allowed %s %d-%d from group %s", groupId, protocol, fromPort, toPort, sourceGroupId)
	return nil
}
