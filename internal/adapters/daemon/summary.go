package daemon

import (
	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
)

// Summarize describes the projects listed by s, in list order.
func Summarize(s *domain.Solution) *ports.SnapshotSummary {
	out := &ports.SnapshotSummary{
		Checksum: s.Checksum,
		Solution: s.Attributes.ID,
		Narrowed: s.IsNarrowed(),
		Projects: make([]ports.ProjectSummary, 0, len(s.ProjectList.Entries)),
	}
	for _, e := range s.ProjectList.Entries {
		p := s.Projects[e.ID]
		docs := p.Documents.Len() + p.AdditionalDocuments.Len() + p.AnalyzerConfigDocuments.Len()
		ps := ports.ProjectSummary{
			ID:        e.ID,
			Name:      p.Attributes.Name,
			Checksum:  p.Checksum,
			Documents: docs,
		}
		for _, ref := range p.ProjectReferences {
			ps.Refs = append(ps.Refs, ref.ProjectID)
		}
		out.Projects = append(out.Projects, ps)
		out.Documents += docs
	}
	return out
}

func summaryToResponse(s *ports.SnapshotSummary) *replicav1.DescribeResponse {
	resp := &replicav1.DescribeResponse{
		Checksum:  uint64(s.Checksum),
		Solution:  string(s.Solution),
		Narrowed:  s.Narrowed,
		Documents: int64(s.Documents),
		Projects:  make([]*replicav1.ProjectSummary, len(s.Projects)),
	}
	for i, p := range s.Projects {
		refs := make([]string, len(p.Refs))
		for j, r := range p.Refs {
			refs[j] = string(r)
		}
		resp.Projects[i] = &replicav1.ProjectSummary{
			Id:        string(p.ID),
			Name:      p.Name,
			Checksum:  uint64(p.Checksum),
			Documents: int64(p.Documents),
			Refs:      refs,
		}
	}
	return resp
}

func summaryFromResponse(resp *replicav1.DescribeResponse) *ports.SnapshotSummary {
	s := &ports.SnapshotSummary{
		Checksum:  domain.Checksum(resp.GetChecksum()),
		Solution:  domain.SolutionID(resp.GetSolution()),
		Narrowed:  resp.GetNarrowed(),
		Documents: int(resp.GetDocuments()),
		Projects:  make([]ports.ProjectSummary, len(resp.GetProjects())),
	}
	for i, p := range resp.GetProjects() {
		var refs []domain.ProjectID
		for _, r := range p.GetRefs() {
			refs = append(refs, domain.ProjectID(r))
		}
		s.Projects[i] = ports.ProjectSummary{
			ID:        domain.ProjectID(p.GetId()),
			Name:      p.GetName(),
			Checksum:  domain.Checksum(p.GetChecksum()),
			Documents: int(p.GetDocuments()),
			Refs:      refs,
		}
	}
	return s
}
