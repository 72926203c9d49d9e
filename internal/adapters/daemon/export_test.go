package daemon

import (
	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/core/ports"
)

var AssetKind = assetKind

func SummaryToResponse(s *ports.SnapshotSummary) *replicav1.DescribeResponse { return summaryToResponse(s) }

func SummaryFromResponse(resp *replicav1.DescribeResponse) *ports.SnapshotSummary {
	return summaryFromResponse(resp)
}
