package condition

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type LogicOperator string

const (
	LogicAnd LogicOperator = "AND"
	LogicOr  LogicOperator = "OR"
)

type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthApiKey AuthType = "apiKey"
	AuthBearer AuthType = "bearer"
)

type Operator string

const (
	OperatorGreaterThan Operator = ">"
	OperatorLessThan    Operator = "<"
	OperatorEqual       Operator = "="
)

// domain separator for predicate ID derivation
const idPrefix = "triggerfi:predicate:v1"

// Condition describes one externally verified numeric check: fetch
// endpoint, extract the value at jsonPath and compare it to threshold.
type Condition struct {
	Endpoint string   `json:"endpoint"`
	AuthType AuthType `json:"authType"`
	// secret; kept out of logs and API responses, persisted only for
	// keeper re-evaluation
	AuthValue string   `json:"authValue,omitempty"`
	JSONPath  string   `json:"jsonPath"`
	Operator  Operator `json:"operator"`
	Threshold float64  `json:"threshold"`
}

func (c *Condition) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("condition endpoint missing")
	}
	if c.JSONPath == "" {
		return fmt.Errorf("condition jsonPath missing")
	}
	switch c.Operator {
	case OperatorGreaterThan, OperatorLessThan, OperatorEqual:
	default:
		return fmt.Errorf("invalid condition operator %q", c.Operator)
	}
	switch c.AuthType {
	case AuthNone, "":
		if c.AuthValue != "" {
			return fmt.Errorf("auth value set without auth type")
		}
	case AuthApiKey, AuthBearer:
		if c.AuthValue == "" {
			return fmt.Errorf("auth value required for auth type %q", c.AuthType)
		}
	default:
		return fmt.Errorf("invalid auth type %q", c.AuthType)
	}
	return nil
}

// PredicateConfig is one reusable condition set. Its ID is derived
// deterministically so orders with identical conditions share a predicate
// and its keeper updates.
type PredicateConfig struct {
	ID         [32]byte
	Conditions []Condition
	Logic      LogicOperator
	Creator    common.Address
}

func NewPredicateConfig(conditions []Condition, logic LogicOperator, creator common.Address) (*PredicateConfig, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("predicate requires at least one condition")
	}
	if logic != LogicAnd && logic != LogicOr {
		return nil, fmt.Errorf("invalid logic operator %q", logic)
	}
	for i, c := range conditions {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
	}

	return &PredicateConfig{
		ID:         DeriveID(conditions, logic, creator),
		Conditions: conditions,
		Logic:      logic,
		Creator:    creator,
	}, nil
}

// DeriveID hashes a canonical, length-prefixed encoding of the condition
// set, logic mode and creator. Auth secrets are deliberately excluded so
// they never leak through a public identifier.
func DeriveID(conditions []Condition, logic LogicOperator, creator common.Address) [32]byte {
	buf := []byte(idPrefix)
	buf = appendField(buf, string(logic))
	buf = append(buf, creator.Bytes()...)
	for _, c := range conditions {
		buf = appendField(buf, c.Endpoint)
		buf = appendField(buf, string(c.AuthType))
		buf = appendField(buf, c.JSONPath)
		buf = appendField(buf, string(c.Operator))
		buf = appendField(buf, strconv.FormatFloat(c.Threshold, 'g', -1, 64))
	}

	var id [32]byte
	copy(id[:], crypto.Keccak256(buf))
	return id
}

func appendField(buf []byte, field string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(field)))
	return append(buf, field...)
}
