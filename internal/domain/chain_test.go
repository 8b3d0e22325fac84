package domain_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"tweet-tipping/internal/domain"
)

func TestExecutionStatus_Executed(t *testing.T) {
	var result domain.ExecutionResult
	body := `{"execution_info":{"tx_hash":"0xabc","gas_used":"100","status":{"type":"executed"}}}`

	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !result.ExecutionInfo.Status.Executed() {
		t.Error("expected executed status")
	}
	if _, ok := result.ExecutionInfo.Status.AbortCode(); ok {
		t.Error("executed status should carry no abort code")
	}
	if result.ExecutionInfo.TxHash != "0xabc" {
		t.Errorf("TxHash: got %v", result.ExecutionInfo.TxHash)
	}
}

func TestExecutionStatus_AbortCode_StringOrNumber(t *testing.T) {
	for _, raw := range []string{
		`{"type":"moveabort","location":"0x1::tweet_tip","abort_code":"3"}`,
		`{"type":"moveabort","abort_code":3}`,
	} {
		var status domain.ExecutionStatus
		if err := json.Unmarshal([]byte(raw), &status); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}

		code, ok := status.AbortCode()
		if !ok || code != 3 {
			t.Errorf("%s: AbortCode = (%d, %v), want (3, true)", raw, code, ok)
		}
		if status.String() != raw {
			t.Errorf("String should echo the raw status, got %s", status.String())
		}
	}
}

func TestExecutionStatus_Built_MarshalsTypeAndCode(t *testing.T) {
	status := domain.NewAbortStatus("moveabort", 7)

	if status.String() != `{"abort_code":"7","type":"moveabort"}` {
		t.Errorf("String: got %s", status.String())
	}
}

func TestFunctionCall_FunctionID(t *testing.T) {
	call := domain.FunctionCall{
		Address:  "0x19be",
		Module:   "tweet_tip",
		Function: "tip",
		Args:     []domain.Arg{domain.StringArg("42"), domain.U256Arg(big.NewInt(150000000))},
	}

	if call.FunctionID() != "0x19be::tweet_tip::tip" {
		t.Errorf("FunctionID: got %v", call.FunctionID())
	}
	if call.Args[1] != (domain.Arg{Type: domain.ArgU256, Value: "150000000"}) {
		t.Errorf("u256 arg: got %+v", call.Args[1])
	}
}

func TestTipCall_EncodesScaledAmount(t *testing.T) {
	amount, err := domain.ParseAmount("1.5")
	if err != nil {
		t.Fatal(err)
	}

	call := domain.TipCall(domain.DefaultContractAddress, "44196397", amount)

	if call.FunctionID() != domain.DefaultContractAddress+"::tweet_tip::tip" {
		t.Errorf("FunctionID() = %q", call.FunctionID())
	}
	want := []domain.Arg{{Type: domain.ArgString, Value: "44196397"}, {Type: domain.ArgU256, Value: "150000000"}}
	if len(call.Args) != 2 || call.Args[0] != want[0] || call.Args[1] != want[1] {
		t.Errorf("Args = %+v, want %+v", call.Args, want)
	}
}

func TestClaimCall_NoArguments(t *testing.T) {
	call := domain.ClaimCall("0xc")

	if call.FunctionID() != "0xc::tweet_tip::claim_tip" {
		t.Errorf("FunctionID() = %q", call.FunctionID())
	}
	if call.Args == nil || len(call.Args) != 0 {
		t.Errorf("Args = %#v, want empty non-nil", call.Args)
	}
}
