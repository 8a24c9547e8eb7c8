package rds

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/rds/rdsiface"
	"github.com/rs/zerolog/log"
)

type InstanceParams struct {
	DBName           string
	InstanceId       string
	InstanceClass    string
	Engine           string
	LicenseModel     string
	AllocatedStorage int64
	MasterUsername   string
	MasterPassword   string
	SubnetGroupName  string
	SecurityGroupId  string
}

func CreateDBSubnetGroup(svc rdsiface.RDSAPI, name, description string, subnetIds []string, tags []*rds.Tag) (arn string, err error) {
	output, err := svc.CreateDBSubnetGroup(&rds.CreateDBSubnetGroupInput{
		DBSubnetGroupName:        aws.String(name),
		DBSubnetGroupDescription: aws.String(description),
		SubnetIds:                aws.StringSlice(subnetIds),
		Tags:                     tags,
	})
	if err != nil {
		return
	}
	arn = aws.StringValue(output.DBSubnetGroup.DBSubnetGroupArn)
	log.Debug().Msgf("db subnet group %s was created successfully", name)
	return
}

func CreateDBInstance(svc rdsiface.RDSAPI, params InstanceParams, tags []*rds.Tag) (arn string, err error) {
	output, err := svc.CreateDBInstance(&rds.CreateDBInstanceInput{
		DBName:               aws.String(params.DBName),
		DBInstanceIdentifier: aws.String(params.InstanceId),
		AllocatedStorage:     aws.Int64(params.AllocatedStorage),
		DBInstanceClass:      aws.String(params.InstanceClass),
		Engine:               aws.String(params.Engine),
		MasterUsername:       aws.String(params.MasterUsername),
		MasterUserPassword:   aws.String(params.MasterPassword),
		VpcSecurityGroupIds:  []*string{aws.String(params.SecurityGroupId)},
		DBSubnetGroupName:    aws.String(params.SubnetGroupName),
		MultiAZ:              aws.Bool(false),
		LicenseModel:         aws.String(params.LicenseModel),
		Tags:                 tags,
	})
	if err != nil {
		return
	}
	arn = aws.StringValue(output.DBInstance.DBInstanceArn)
	log.Debug().Msgf("db instance %s creation started", params.InstanceId)
	return
}

// WaitForDBInstanceAvailable blocks until the instance reports "available" or the sdk waiter gives up.
func WaitForDBInstanceAvailable(svc rdsiface.RDSAPI, instanceId string) error {
	log.Debug().Msgf("waiting for db instance %s to become available ...", instanceId)
	return svc.WaitUntilDBInstanceAvailable(&rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(instanceId),
	})
}
