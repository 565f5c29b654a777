package stark_test

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-stark-crypto/pkg/stark"
)

func Example() {
	privateKey := stark.NewFieldElement(big.NewInt(12345))

	var zero stark.FieldElement
	msgHash := stark.PedersenHash(
		stark.PedersenHash(zero, stark.NewFieldElement(big.NewInt(4321))),
		stark.NewFieldElement(big.NewInt(123)),
	)

	signer, err := stark.NewSigner(privateKey)
	if err != nil {
		panic(err)
	}
	sig, err := signer.Sign(msgHash)
	if err != nil {
		panic(err)
	}

	fmt.Println("hash:", msgHash)
	fmt.Println("r:", "0x"+sig.R.Text(16))
	fmt.Println("s:", "0x"+sig.S.Text(16))
	fmt.Println("valid:", stark.Verify(msgHash, sig, signer.PublicKey()))
	// Output:
	// hash: 0x6165e4d72999797ba661c6ed16a236b9c96c0476e632b85b7840eabee396f11
	// r: 0x643fd83cd1da9a3ddb757a849cd9924456b3df11dab9be5ff44f95c570ba391
	// s: 0x5da0e8f5ee4578562cdd01d3586f91724316b933d98c5a2e570f30b9ac02206
	// valid: true
}

func ExampleSelectorFromName() {
	fmt.Println(stark.SelectorFromName("transfer"))
	// Output: 0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e
}
