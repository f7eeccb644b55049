package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/divera-ha/releaserc/internal/metrics"
	"github.com/divera-ha/releaserc/internal/release"
	"github.com/divera-ha/releaserc/internal/remote"
	"github.com/divera-ha/releaserc/pkg/releaserc"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
)

var contentTypes = map[releaserc.Format]string{
	releaserc.FormatJSON: contentTypeJSON,
	releaserc.FormatYAML: "application/yaml; charset=utf-8",
}

type BranchInfo struct {
	Name          string              `json:"name"`
	ReleaseBranch bool                `json:"releaseBranch"`
	Prerelease    string              `json:"prerelease,omitempty"`
	Mode          release.PublishMode `json:"mode"`
}

func newBranchInfo(name string) *BranchInfo {
	info := &BranchInfo{
		Name: name,
		Mode: release.SelectPublishMode(name, config.Branches),
	}
	if b := config.Branches.Find(name); b != nil {
		info.ReleaseBranch = true
		info.Prerelease = b.Prerelease
	}
	return info
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	format, err := releaserc.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeJSONError(w, r, http.StatusBadRequest, err)
		return
	}
	branch := r.URL.Query().Get("branch")
	cfg, mode := release.Assemble(branch)
	if config.Branches.Find(branch) == nil {
		s.requestLogger(r).Warnf("branch %q is not a release branch, using %s publish", branch, mode)
	}

	ctx, _ := tag.New(r.Context(), tag.Upsert(metrics.TagPublishMode, string(mode)))
	stats.Record(ctx, metrics.CounterConfigRenders.M(1))

	var buf bytes.Buffer
	if err := releaserc.Encode(&buf, cfg, format); err != nil {
		s.writeJSONError(w, r, http.StatusInternalServerError, err, "could not render config")
		return
	}
	res := &response{
		ContentType: contentTypes[format],
		Header:      map[string]string{HeaderPublishMode: string(mode)},
		Body:        buf.Bytes(),
	}
	s.setInCache(r, s.getCacheKeyFromRequest(r), res)
	s.writeResponse(w, res)
}

func (s *Server) listBranches(w http.ResponseWriter, r *http.Request) {
	repo, err := s.config.GetRepository()
	if err != nil {
		s.writeJSONError(w, r, http.StatusServiceUnavailable, err)
		return
	}

	err = s.ghSemaphore.Acquire(r.Context(), 1)
	if err != nil {
		s.writeJSONError(w, r, http.StatusTooManyRequests, err, "could not acquire semaphore")
		return
	}
	names, err := remote.ListBranches(r.Context(), s.ghClient, repo)
	s.ghSemaphore.Release(1)
	if err != nil {
		s.writeJSONError(w, r, http.StatusBadGateway, fmt.Errorf("failed to list branches of %s: %w", repo, err), "could not list branches")
		return
	}

	branches := make([]*BranchInfo, len(names))
	for i, name := range names {
		branches[i] = newBranchInfo(name)
	}
	body, err := json.Marshal(branches)
	if err != nil {
		s.writeJSONError(w, r, http.StatusInternalServerError, err)
		return
	}
	res := &response{ContentType: contentTypeJSON, Body: body}
	s.setInCache(r, s.getCacheKeyFromRequest(r), res)
	s.writeResponse(w, res)
}
