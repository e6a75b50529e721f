package condition

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/tidwall/gjson"
)

const (
	FETCH_TIMEOUT   = time.Second * 15
	MAX_CONCURRENCY = 4
)

// Evaluator resolves a condition set to a single boolean against live
// API data. Every per-condition failure - unreachable endpoint, bad JSON
// path, non-numeric value - degrades that condition to false; evaluation
// itself never fails.
type Evaluator struct {
	client *http.Client
}

func NewEvaluator(client *http.Client) *Evaluator {
	if client == nil {
		client = &http.Client{
			Timeout: FETCH_TIMEOUT,
		}
	}
	return &Evaluator{
		client: client,
	}
}

// Evaluate checks every condition concurrently and reduces the results
// with the given logic operator. AND requires all conditions true, OR any.
func (e *Evaluator) Evaluate(ctx context.Context, conditions []Condition, logic LogicOperator) bool {
	if len(conditions) == 0 {
		return false
	}

	results := make([]bool, len(conditions))
	p := pool.New().WithMaxGoroutines(MAX_CONCURRENCY)
	for i, c := range conditions {
		p.Go(func() {
			results[i] = e.check(ctx, c)
		})
	}
	p.Wait()

	if logic == LogicAnd {
		for _, r := range results {
			if !r {
				return false
			}
		}
		return true
	}

	for _, r := range results {
		if r {
			return true
		}
	}
	return false
}

func (e *Evaluator) check(ctx context.Context, c Condition) bool {
	value, err := e.fetch(ctx, c)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", c.Endpoint).Msg("Condition degraded to false")
		return false
	}

	switch c.Operator {
	case OperatorGreaterThan:
		return value > c.Threshold
	case OperatorLessThan:
		return value < c.Threshold
	case OperatorEqual:
		return value == c.Threshold
	default:
		return false
	}
}

func (e *Evaluator) fetch(ctx context.Context, c Condition) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	switch c.AuthType {
	case AuthApiKey:
		req.Header.Set("X-API-Key", c.AuthValue)
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+c.AuthValue)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP request failed with status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	return extract(body, c.JSONPath)
}

func extract(body []byte, jsonPath string) (float64, error) {
	res := gjson.GetBytes(body, normalizePath(jsonPath))
	if !res.Exists() {
		return 0, fmt.Errorf("no value at path %s", jsonPath)
	}

	switch res.Type {
	case gjson.Number:
		return res.Num, nil
	case gjson.String:
		v, err := strconv.ParseFloat(res.Str, 64)
		if err != nil {
			return 0, fmt.Errorf("value at path %s is not numeric", jsonPath)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("value at path %s is not numeric", jsonPath)
	}
}

// normalizePath converts bracket indexing (items[0].value) into the dot
// form the JSON path library expects (items.0.value).
func normalizePath(jsonPath string) string {
	r := strings.NewReplacer("[", ".", "]", "")
	return strings.TrimPrefix(r.Replace(jsonPath), ".")
}
