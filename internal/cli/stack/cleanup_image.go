package stack

import (
	"github.com/spf13/cobra"
	"webstack/internal/connectors"
	"webstack/internal/env"
	"webstack/internal/logging"
	stack2 "webstack/internal/stack"
)

var imageArtifacts stack2.ImageArtifacts

var CleanupImage = &cobra.Command{
	Use:   "cleanup-image [flags]",
	Short: "Deregister a webapp image, delete its snapshot and terminate instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := connectors.NewAWSClients(env.Config.Region)
		if err != nil {
			return err
		}

		err = stack2.CleanupImage(clients, imageArtifacts)
		if err != nil {
			logging.UserFailure("Image cleanup failed!")
			return err
		}
		logging.UserSuccess("Image cleanup finished successfully!")
		return nil
	},
	SilenceUsage: true,
}

func init() {
	CleanupImage.Flags().StringVar(&imageArtifacts.ImageId, "image-id", "", "ami id to deregister")
	CleanupImage.Flags().StringVar(&imageArtifacts.SnapshotId, "snapshot-id", "", "ebs snapshot id to delete")
	CleanupImage.Flags().StringArrayVar(&imageArtifacts.InstanceIds, "instance-id", []string{}, "instance id to terminate, may be repeated")
}
