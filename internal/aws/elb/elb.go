package elb

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/aws/aws-sdk-go/service/elb/elbiface"
	"github.com/rs/zerolog/log"
)

type Listener struct {
	Protocol         string
	LoadBalancerPort int64
	InstanceProtocol string
	InstancePort     int64
}

// CreateLoadBalancer creates a classic load balancer and returns its dns name.
func CreateLoadBalancer(svc elbiface.ELBAPI, name string, listeners []Listener, subnetIds, securityGroupIds []string, tags []*elb.Tag) (dnsName string, err error) {
	var elbListeners []*elb.Listener
	for _, l := range listeners {
		elbListeners = append(elbListeners, &elb.Listener{
			Protocol:         aws.String(l.Protocol),
			LoadBalancerPort: aws.Int64(l.LoadBalancerPort),
			InstanceProtocol: aws.String(l.InstanceProtocol),
			InstancePort:     aws.Int64(l.InstancePort),
		})
	}

	output, err := svc.CreateLoadBalancer(&elb.CreateLoadBalancerInput{
		LoadBalancerName: aws.String(name),
		Listeners:        elbListeners,
		Subnets:          aws.StringSlice(subnetIds),
		SecurityGroups:   aws.StringSlice(securityGroupIds),
		Tags:             tags,
	})
	if err != nil {
		return
	}
	dnsName = aws.StringValue(output.DNSName)
	log.Debug().Msgf("load balancer %s was created successfully", name)
	return
}

func DeleteLoadBalancer(svc elbiface.ELBAPI, name string) error {
	_, err := svc.DeleteLoadBalancer(&elb.DeleteLoadBalancerInput{
		LoadBalancerName: aws.String(name),
	})
	if err != nil {
		return err
	}
	log.Debug().Msgf("load balancer %s was deleted", name)
	return nil
}
