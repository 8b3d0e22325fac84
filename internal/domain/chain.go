package domain

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
)

// ArgType is the Move type of a positional call argument.
type ArgType string

const (
	ArgString ArgType = "string"
	ArgU256   ArgType = "u256"
)

// Arg is one positional argument of a FunctionCall.
type Arg struct {
	Type  ArgType `json:"type"`
	Value string  `json:"value"`
}

func StringArg(s string) Arg { return Arg{Type: ArgString, Value: s} }

func U256Arg(n *big.Int) Arg { return Arg{Type: ArgU256, Value: n.String()} }

// FunctionCall names an entry function of a published module and its arguments.
type FunctionCall struct {
	Address  string `json:"address"`
	Module   string `json:"module"`
	Function string `json:"function"`
	Args     []Arg  `json:"args"`
}

// FunctionID renders the call target as address::module::function.
func (c FunctionCall) FunctionID() string {
	return c.Address + "::" + c.Module + "::" + c.Function
}

// Transaction is the unsigned envelope handed to a wallet for signing.
type Transaction struct {
	ChainID      uint64       `json:"chain_id"`
	Sender       string       `json:"sender"`
	MaxGasAmount uint64       `json:"max_gas_amount"`
	Call         FunctionCall `json:"call"`
}

// StatusExecuted is the status type of a transaction that ran to completion.
const StatusExecuted = "executed"

// ExecutionStatus is the status object of an executed transaction, for
// example {"type":"executed"} or {"type":"moveabort","abort_code":"3",...}.
// The raw JSON is kept so failures can be reported verbatim.
type ExecutionStatus struct {
	Type      string
	abortCode *uint64
	raw       json.RawMessage
}

func (s *ExecutionStatus) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type      string          `json:"type"`
		AbortCode json.RawMessage `json:"abort_code"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.Type = wire.Type
	s.abortCode = parseAbortCode(wire.AbortCode)
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (s ExecutionStatus) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	m := map[string]any{"type": s.Type}
	if s.abortCode != nil {
		m["abort_code"] = strconv.FormatUint(*s.abortCode, 10)
	}
	return json.Marshal(m)
}

// NewAbortStatus builds a non-executed status carrying an abort code.
func NewAbortStatus(typ string, code uint64) ExecutionStatus {
	return ExecutionStatus{Type: typ, abortCode: &code}
}

// Executed reports whether the transaction ran to completion.
func (s ExecutionStatus) Executed() bool {
	return s.Type == StatusExecuted
}

// AbortCode returns the abort code, if the status carries one.
func (s ExecutionStatus) AbortCode() (uint64, bool) {
	if s.abortCode == nil {
		return 0, false
	}
	return *s.abortCode, true
}

// String returns the status as JSON.
func (s ExecutionStatus) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return s.Type
	}
	return string(b)
}

// abort_code arrives as a JSON string or number depending on the node.
func parseAbortCode(raw json.RawMessage) *uint64 {
	v := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if v == "" || v == "null" {
		return nil
	}
	code, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	return &code
}

// ExecutionInfo is the execution part of a submitted transaction's result.
type ExecutionInfo struct {
	TxHash  string          `json:"tx_hash"`
	GasUsed string          `json:"gas_used,omitempty"`
	Status  ExecutionStatus `json:"status"`
}

// ExecutionResult is what the submission API returns for a signed transaction.
type ExecutionResult struct {
	ExecutionInfo ExecutionInfo `json:"execution_info"`
}
