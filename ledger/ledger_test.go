package ledger

import (
	"crypto/ed25519"
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/cryptoimpl"
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutuscore"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/plutusexec"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// happyPathParams returns protocol parameters generous enough that a
// single-input, single-output, key-only transaction clears every
// size/value/collateral bound without exercising any of them.
func happyPathParams() ledgerstate.Params {
	return ledgerstate.Params{
		MinFeeConstant:       155_381,
		MinFeeCoefficient:    44,
		MaxTxSize:            16_384,
		MaxValueSize:         5_000,
		UtxoCostPerByte:      4_310,
		MaxCollateralInputs:  3,
		CollateralPercentage: 150,
		MaxTxExecutionUnits:  primitives.ExUnits{Memory: 14_000_000, Steps: 10_000_000_000},
	}
}

// signedHappyPathTx builds a single-input, single-output, unscripted
// transaction: one ed25519-keyed UTxO spent entirely into one output plus
// a fee covering Params.BaseFee, witnessed with a real signature over the
// transaction id so VerifiedSignaturesInWitnesses is exercised for real
// rather than stubbed out.
func signedHappyPathTx(t *testing.T, params ledgerstate.Params) (*txmodel.Transaction, ledgerstate.Utxos) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(nil)
	assert.Equal(t, nil, err)
	var vkey [32]byte
	copy(vkey[:], pub)

	payment := primitives.Credential{Kind: primitives.CredentialKeyHash, Hash: primitives.Hash28(cryptoimpl.Blake2b224(pub))}
	addr := primitives.Address{Kind: primitives.AddressEnterprise, Network: primitives.NetworkTestnet, Payment: payment}

	input := txmodel.TransactionInput{TransactionId: primitives.Hash32{0xaa}, Index: 0}
	inputCoin := primitives.Coin(5_000_000)
	utxos := ledgerstate.Utxos{input: txmodel.TransactionOutput{Address: addr, Value: primitives.Value{Coin: inputCoin}}}

	// measured with a coin of the same encoded width as the final amount
	output := txmodel.TransactionOutput{Address: addr, Value: primitives.Value{Coin: inputCoin}}
	outSize, err := output.SerializedSize()
	assert.Equal(t, nil, err)
	minOutputCoin := params.MinUtxoCoin(outSize)

	body := txmodel.TransactionBody{
		Inputs:  []txmodel.TransactionInput{input},
		Outputs: []txmodel.TransactionOutput{output},
	}
	redeemerSize := 0 // no redeemers in this fixture
	size := outSize + redeemerSize
	fee := params.BaseFee(size)

	// leave everything above the minimum in the output, consumed = produced.
	body.Outputs[0].Value.Coin = inputCoin - fee
	assert.True(t, body.Outputs[0].Value.Coin >= minOutputCoin, "fixture output must clear the min-ADA floor")
	body.Fee = fee

	tx := &txmodel.Transaction{Id: primitives.Hash32{0x01, 0x02, 0x03}, Body: body, IsValid: true}

	sig := ed25519.Sign(priv, tx.Id[:])
	var sigArr [64]byte
	copy(sigArr[:], sig)
	tx.WitnessSet.VKeyWitnesses = []txmodel.VKeyWitness{{VKey: vkey, Signature: sigArr}}

	return tx, utxos
}

func TestApplyTransactionHappyPath(t *testing.T) {
	params := happyPathParams()
	tx, utxos := signedHappyPathTx(t, params)
	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkTestnet}, Params: params}
	state := ledgerstate.NewState(utxos)

	next, err := ApplyTransaction(ctx, state, tx, plutusexec.Programs{})
	assert.Equal(t, nil, err)
	assert.True(t, next != nil)

	_, stillThere := next.Utxos.Get(tx.Body.Inputs[0])
	assert.False(t, stillThere, "spent input must be removed from the successor state's UTxO set")

	newInput := txmodel.TransactionInput{TransactionId: tx.Id, Index: 0}
	produced, ok := next.Utxos.Get(newInput)
	assert.True(t, ok, "the transaction's one output must appear in the successor state")
	assert.Equal(t, tx.Body.Outputs[0].Value.Coin, produced.Value.Coin)
}

func TestApplyTransactionRejectsUnsignedInput(t *testing.T) {
	params := happyPathParams()
	tx, utxos := signedHappyPathTx(t, params)
	tx.WitnessSet.VKeyWitnesses = nil // drop the witness entirely

	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkTestnet}, Params: params}
	state := ledgerstate.NewState(utxos)

	_, err := ApplyTransaction(ctx, state, tx, plutusexec.Programs{})
	assert.True(t, sts.IsKind(err, sts.KindMissingKeyHashes))
}

func TestApplyTransactionRejectsUnderpaidFee(t *testing.T) {
	params := happyPathParams()
	tx, utxos := signedHappyPathTx(t, params)
	tx.Body.Fee -= 1 // now below BaseFee, and the conservation equation also breaks

	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkTestnet}, Params: params}
	state := ledgerstate.NewState(utxos)

	_, err := ApplyTransaction(ctx, state, tx, plutusexec.Programs{})
	assert.True(t, err != nil)
}

// TestApplyTransactionPhase2FailureConsumesCollateral builds a
// transaction spending a script-locked input whose Plutus script always
// errors, declared isValid=false as a well-formed collateral-consuming
// transaction must be (§4.3.5). Every phase-1 validator must still pass
// (including the collateral-specific arm of FeesOk), and the mutator
// pipeline must credit the collateral into Fees rather than apply the
// spend input/outputs.
func TestApplyTransactionPhase2FailureConsumesCollateral(t *testing.T) {
	params := happyPathParams()
	params.CollateralPercentage = 150

	scriptHash := primitives.Hash28{0xcc}
	scriptInput := txmodel.TransactionInput{TransactionId: primitives.Hash32{0xaa}, Index: 0}
	scriptInputOut := txmodel.TransactionOutput{
		Address: primitives.Address{Kind: primitives.AddressEnterprise, Payment: primitives.Credential{Kind: primitives.CredentialScriptHash, Hash: scriptHash}},
		Value:   primitives.Value{Coin: 5_000_000},
	}

	collateralPub, collateralPriv, err := ed25519.GenerateKey(nil)
	assert.Equal(t, nil, err)
	var collateralVKey [32]byte
	copy(collateralVKey[:], collateralPub)
	collateralCred := primitives.Credential{Kind: primitives.CredentialKeyHash, Hash: primitives.Hash28(cryptoimpl.Blake2b224(collateralPub))}
	collateralInput := txmodel.TransactionInput{TransactionId: primitives.Hash32{0xbb}, Index: 0}
	collateralOut := txmodel.TransactionOutput{
		Address: primitives.Address{Kind: primitives.AddressEnterprise, Payment: collateralCred},
		Value:   primitives.Value{Coin: 3_000_000},
	}

	utxos := ledgerstate.Utxos{scriptInput: scriptInputOut, collateralInput: collateralOut}

	outputCoin := primitives.Coin(4_800_000)
	fee := primitives.Coin(200_000)

	body := txmodel.TransactionBody{
		Inputs:           []txmodel.TransactionInput{scriptInput},
		CollateralInputs: []txmodel.TransactionInput{collateralInput},
		Outputs:          []txmodel.TransactionOutput{{Address: scriptInputOut.Address, Value: primitives.Value{Coin: outputCoin}}},
		Fee:              fee,
	}

	tx := &txmodel.Transaction{Id: primitives.Hash32{0x09}, Body: body, IsValid: false}
	tx.WitnessSet.PlutusV1Scripts = []primitives.PlutusScript{{Language: primitives.ScriptPlutusV1, CBOR: []byte{0x01}, Hash: scriptHash}}
	tx.WitnessSet.Redeemers = []txmodel.Redeemer{{
		Key:     txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0},
		Data:    plutusdata.Int(0),
		ExUnits: primitives.ExUnits{Memory: 1000, Steps: 1000},
	}}

	sig := ed25519.Sign(collateralPriv, tx.Id[:])
	var sigArr [64]byte
	copy(sigArr[:], sig)
	tx.WitnessSet.VKeyWitnesses = []txmodel.VKeyWitness{{VKey: collateralVKey, Signature: sigArr}}

	params.CostModels = ledgerstate.CostModels{V1: ledgerstate.CostModel{Params: []int64{1, 2, 3}}}
	scriptDataHash, err := ComputeScriptDataHash(tx, params.CostModels)
	assert.Equal(t, nil, err)
	assert.True(t, scriptDataHash != nil)
	tx.Body.ScriptDataHash = scriptDataHash

	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkTestnet}, Params: params}
	state := ledgerstate.NewState(utxos)

	programs := plutusexec.Programs{scriptHash: plutuscore.ErrorTerm()}
	next, err := ApplyTransaction(ctx, state, tx, programs)
	assert.Equal(t, nil, err)
	assert.True(t, next != nil)

	_, spendInputStillThere := next.Utxos.Get(scriptInput)
	assert.True(t, spendInputStillThere, "a phase-2 failure never consumes the spend input, only collateral")

	_, collateralStillThere := next.Utxos.Get(collateralInput)
	assert.False(t, collateralStillThere, "collateral input must be consumed on phase-2 failure")

	assert.Equal(t, collateralOut.Value.Coin, next.Fees, "the consumed collateral, minus any return, is credited to Fees")
}

func TestComputeScriptDataHashAbsentWithoutRedeemers(t *testing.T) {
	tx := &txmodel.Transaction{}
	h, err := ComputeScriptDataHash(tx, ledgerstate.CostModels{})
	assert.Equal(t, nil, err)
	assert.True(t, h == nil)
}
