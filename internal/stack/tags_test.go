package stack

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTags_Named(t *testing.T) {
	common := GetCommonTags("run-1", "eu-west-1")
	named := common.Named("bilal-lb")

	assert.Equal(t, "bilal-lb", named[NameTagKey])
	assert.Equal(t, "run-1", named[RunIdTagKey])
	assert.NotContains(t, common, NameTagKey)
}

func TestTags_Conversions(t *testing.T) {
	tags := Tags{"Name": "web", "team": "infra"}

	toMap := func(keys, values []*string) map[string]string {
		m := map[string]string{}
		for i := range keys {
			m[aws.StringValue(keys[i])] = aws.StringValue(values[i])
		}
		return m
	}

	var keys, values []*string
	for _, tag := range tags.AsEc2() {
		keys, values = append(keys, tag.Key), append(values, tag.Value)
	}
	assert.Equal(t, map[string]string(tags), toMap(keys, values))

	keys, values = nil, nil
	for _, tag := range tags.AsRds() {
		keys, values = append(keys, tag.Key), append(values, tag.Value)
	}
	assert.Equal(t, map[string]string(tags), toMap(keys, values))

	keys, values = nil, nil
	for _, tag := range tags.AsElb() {
		keys, values = append(keys, tag.Key), append(values, tag.Value)
	}
	assert.Equal(t, map[string]string(tags), toMap(keys, values))

	for _, tag := range tags.AsAsg() {
		assert.True(t, aws.BoolValue(tag.PropagateAtLaunch))
	}
}
