package dto

import "event-portal/modules/access/service"

type LoadingResponse struct {
	State string `json:"state"`
}

type DecisionResponse struct {
	Path   string       `json:"path"`
	Kind   service.Kind `json:"kind"`
	Target string       `json:"target,omitempty"`
}

func ToDecisionResponse(path string, d service.Decision) *DecisionResponse {
	return &DecisionResponse{Path: path, Kind: d.Kind, Target: d.Target}
}
