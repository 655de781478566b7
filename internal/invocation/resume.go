package invocation

import "go.trai.ch/keel/internal/core/domain"

// ResumeSelector returns the shortest selector that unambiguously identifies
// failed within projects for a resume-from re-invocation. The artifact id
// alone (":artifact") suffices unless another project shares it, in which
// case the group id disambiguates ("group:artifact").
func ResumeSelector(projects []domain.ProjectIdentity, failed domain.ProjectIdentity) string {
	shared := 0
	for _, p := range projects {
		if p.ArtifactID == failed.ArtifactID {
			shared++
		}
	}
	if shared > 1 {
		return failed.GroupID + ":" + failed.ArtifactID
	}
	return ":" + failed.ArtifactID
}
