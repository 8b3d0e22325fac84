package domain

// DefaultContractAddress is the address the tweet_tip module is published at.
const DefaultContractAddress = "0x19be61b2c02fe2670a30013f7cb874b743ef31bde435a9209f339be40982f636"

// TipModule is the Move module holding the tip and claim entry functions.
const TipModule = "tweet_tip"

// TipCall builds tweet_tip::tip(author_id: string, amount: u256).
func TipCall(contract, authorID string, amount Amount) FunctionCall {
	return FunctionCall{
		Address:  contract,
		Module:   TipModule,
		Function: "tip",
		Args:     []Arg{StringArg(authorID), U256Arg(amount.Units())},
	}
}

// ClaimCall builds tweet_tip::claim_tip().
func ClaimCall(contract string) FunctionCall {
	return FunctionCall{
		Address:  contract,
		Module:   TipModule,
		Function: "claim_tip",
		Args:     []Arg{},
	}
}
