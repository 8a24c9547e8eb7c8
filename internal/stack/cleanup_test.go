package stack

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCleanupImage(t *testing.T) {
	tests := []struct {
		name      string
		artifacts ImageArtifacts
		ops       []string
	}{
		{
			name: "everything",
			artifacts: ImageArtifacts{
				ImageId:     "ami-0123",
				SnapshotId:  "snap-0123",
				InstanceIds: []string{"i-1", "i-2"},
			},
			ops: []string{"ec2:DeregisterImage", "ec2:DeleteSnapshot", "ec2:TerminateInstances"},
		},
		{
			name:      "image only",
			artifacts: ImageArtifacts{ImageId: "ami-0123"},
			ops:       []string{"ec2:DeregisterImage"},
		},
		{
			name:      "instances only",
			artifacts: ImageArtifacts{InstanceIds: []string{"i-1"}},
			ops:       []string{"ec2:TerminateInstances"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			require.NoError(t, CleanupImage(newFakeClients(rec), tt.artifacts))
			assert.Equal(t, tt.ops, rec.ops())
		})
	}
}

func TestCleanupImage_Inputs(t *testing.T) {
	rec := newRecorder()
	err := CleanupImage(newFakeClients(rec), ImageArtifacts{
		ImageId:     "ami-0123",
		SnapshotId:  "snap-0123",
		InstanceIds: []string{"i-1", "i-2"},
	})
	require.NoError(t, err)

	image := rec.inputs("ec2:DeregisterImage")[0].(*ec2.DeregisterImageInput)
	assert.Equal(t, "ami-0123", aws.StringValue(image.ImageId))
	snapshot := rec.inputs("ec2:DeleteSnapshot")[0].(*ec2.DeleteSnapshotInput)
	assert.Equal(t, "snap-0123", aws.StringValue(snapshot.SnapshotId))
	terminate := rec.inputs("ec2:TerminateInstances")[0].(*ec2.TerminateInstancesInput)
	assert.Equal(t, []string{"i-1", "i-2"}, aws.StringValueSlice(terminate.InstanceIds))
}

func TestCleanupImage_Empty(t *testing.T) {
	rec := newRecorder()
	assert.Error(t, CleanupImage(newFakeClients(rec), ImageArtifacts{}))
	assert.Empty(t, rec.calls)
}

func TestCleanupImage_StopsOnFailure(t *testing.T) {
	rec := newRecorder()
	rec.failOn["ec2:DeregisterImage"] = awserr.New("InvalidAMIID.NotFound", "no such image", nil)

	err := CleanupImage(newFakeClients(rec), ImageArtifacts{ImageId: "ami-0123", SnapshotId: "snap-0123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ami-0123")
	assert.Equal(t, []string{"ec2:DeregisterImage"}, rec.ops())
}
