package litmus

import "github.com/saturnines/litmus-go/pkg/transport/graphql"

// Default selection sets, used when a method is given a nil projection.
// They are rebuilt on each call since projections are mutable.

func userDetailsProjection() *graphql.Projection {
	return graphql.NewProjection("userID", "username", "email")
}

func EnvironmentProjection() *graphql.Projection {
	return graphql.NewProjection(
		"environmentID", "projectID", "name", "description", "tags", "type",
		"infraIDs", "isRemoved", "createdAt", "updatedAt",
	).
		Sub("createdBy", userDetailsProjection()).
		Sub("updatedBy", userDetailsProjection())
}

func ListEnvironmentProjection() *graphql.Projection {
	return graphql.NewProjection("totalNoOfEnvironments").
		Sub("environments", EnvironmentProjection())
}

func InfraProjection() *graphql.Projection {
	return graphql.NewProjection(
		"projectID", "infraID", "name", "description", "tags", "environmentID",
		"platformName", "isActive", "isInfraConfirmed", "isRemoved",
		"noOfExperiments", "noOfExperimentRuns", "infraNamespace", "serviceAccount",
		"infraScope", "infraNsExists", "infraSaExists", "lastExperimentTimestamp",
		"startTime", "version", "infraType", "updateStatus", "createdAt", "updatedAt",
	).
		Sub("createdBy", userDetailsProjection()).
		Sub("updatedBy", userDetailsProjection())
}

func ListInfraProjection() *graphql.Projection {
	return graphql.NewProjection("totalNoOfInfras").
		Sub("infras", InfraProjection())
}

func InfraStatsProjection() *graphql.Projection {
	return graphql.NewProjection(
		"totalInfrastructures", "totalActiveInfrastructure", "totalInactiveInfrastructures",
		"totalConfirmedInfrastructure", "totalNonConfirmedInfrastructures",
	)
}

func ConfirmInfraRegistrationProjection() *graphql.Projection {
	return graphql.NewProjection("isInfraConfirmed", "newAccessKey", "infraID")
}

func RegisterInfraProjection() *graphql.Projection {
	return graphql.NewProjection("token", "infraID", "name", "manifest")
}

func ChaosHubProjection() *graphql.Projection {
	return graphql.NewProjection(
		"id", "name", "repoURL", "repoBranch", "projectID", "isDefault", "tags",
		"description", "hubType", "isPrivate", "authType", "isAvailable",
		"totalFaults", "totalExperiments", "lastSyncedAt", "isRemoved",
		"createdAt", "updatedAt",
	)
}

func ChaosHubStatsProjection() *graphql.Projection {
	return graphql.NewProjection("totalChaosHubs")
}

func orDefault(p *graphql.Projection, def func() *graphql.Projection) *graphql.Projection {
	if p.Empty() {
		return def()
	}
	return p
}
