package stack

import (
	"github.com/pkg/errors"
	"webstack/internal/aws/instance"
	"webstack/internal/connectors"
	"webstack/internal/logging"
)

// ImageArtifacts identifies what is left behind after baking a webapp image.
type ImageArtifacts struct {
	ImageId     string
	SnapshotId  string
	InstanceIds []string
}

func (a ImageArtifacts) Empty() bool {
	return a.ImageId == "" && a.SnapshotId == "" && len(a.InstanceIds) == 0
}

// CleanupImage deregisters the image, deletes its snapshot and terminates the given instances.
// Empty identifiers are skipped. It is never part of Teardown.
func CleanupImage(clients *connectors.Clients, artifacts ImageArtifacts) error {
	if artifacts.Empty() {
		return errors.New("no image, snapshot or instance id given")
	}

	if artifacts.ImageId != "" {
		if err := instance.DeregisterImage(clients.EC2, artifacts.ImageId); err != nil {
			return errors.Wrapf(err, "failed deregistering image %s", artifacts.ImageId)
		}
		logging.UserProgress("image %s deregistered", artifacts.ImageId)
	}

	if artifacts.SnapshotId != "" {
		if err := instance.DeleteSnapshot(clients.EC2, artifacts.SnapshotId); err != nil {
			return errors.Wrapf(err, "failed deleting snapshot %s", artifacts.SnapshotId)
		}
		logging.UserProgress("snapshot %s deleted", artifacts.SnapshotId)
	}

	if len(artifacts.InstanceIds) > 0 {
		if err := instance.TerminateInstances(clients.EC2, artifacts.InstanceIds); err != nil {
			return errors.Wrapf(err, "failed terminating instances %v", artifacts.InstanceIds)
		}
		logging.UserProgress("terminating instances %v", artifacts.InstanceIds)
	}
	return nil
}
