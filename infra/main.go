package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/txdash/transactions-dashboard/infra/cloudrun"
	"github.com/txdash/transactions-dashboard/infra/docker"
	"github.com/txdash/transactions-dashboard/infra/firestore"
	"github.com/txdash/transactions-dashboard/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the project
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		err = cloudrun.SetupCloudRun(ctx, prov, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
