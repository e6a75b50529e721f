package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/triggerfi/triggerfi/cache"
	"github.com/triggerfi/triggerfi/condition"
	"github.com/triggerfi/triggerfi/registry"
)

type PredicateStore interface {
	PredicateByID(predicateID string) (*registry.Predicate, error)
}

type ResultCache interface {
	Result(predicateID string) (cache.Result, error)
}

type PredicateResponse struct {
	PredicateID string                `json:"predicateId"`
	Result      bool                  `json:"result"`
	UpdateCount uint64                `json:"updateCount"`
	Fees        string                `json:"fees,omitempty"`
	CheckedAt   *time.Time            `json:"checkedAt,omitempty"`
	Logic       string                `json:"logic,omitempty"`
	Conditions  []condition.Condition `json:"conditions,omitempty"`
}

type PredicateHandler struct {
	predicates PredicateStore
	results    ResultCache
}

func NewPredicateHandler(predicates PredicateStore, results ResultCache) *PredicateHandler {
	return &PredicateHandler{
		predicates: predicates,
		results:    results,
	}
}

// HandleGet returns the latest known evaluation state for a predicate
// together with its condition configuration. Auth secrets are stripped
// from the response.
func (h *PredicateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	predicateID := vars["predicateId"]

	resp := &PredicateResponse{
		PredicateID: predicateID,
	}
	if res, err := h.results.Result(predicateID); err == nil {
		resp.Result = res.Value
		resp.UpdateCount = res.UpdateCount
		resp.Fees = res.Fees
		resp.CheckedAt = &res.CheckedAt
	}

	p, err := h.predicates.PredicateByID(predicateID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			JSONError(w, err, http.StatusNotFound)
			return
		}
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	if resp.CheckedAt == nil {
		resp.Result = p.LastResult
		resp.UpdateCount = p.UpdateCount
		resp.CheckedAt = p.LastChecked
	}
	resp.Logic = p.Logic
	if conditions, err := p.ConditionSet(); err == nil {
		for i := range conditions {
			conditions[i].AuthValue = ""
		}
		resp.Conditions = conditions
	}

	JSONResponse(w, resp, http.StatusOK)
}
